// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce_test

import (
	"errors"
	"strings"
	"testing"

	"code.hybscloud.com/bounce"
)

func TestTryEvalSuccess(t *testing.T) {
	got, err := bounce.TryEval(bounce.Map(bounce.Done(20), func(x int) int { return x + 22 }))
	if err != nil {
		t.Fatalf("TryEval error = %v", err)
	}
	if got != 42 {
		t.Errorf("TryEval = %v, want 42", got)
	}
}

func TestTryEvalPanicValue(t *testing.T) {
	s := bounce.Bind(bounce.Done(1), func(int) bounce.Step[int] {
		panic("boom")
	})
	got, err := bounce.TryEval(s)
	if err == nil {
		t.Fatal("TryEval error = nil, want panic error")
	}
	if !bounce.ErrEvalPanicked.Is(err) {
		t.Errorf("error kind = %v, want ErrEvalPanicked", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q does not mention the panic value", err)
	}
	if got != 0 {
		t.Errorf("value on failure = %v, want 0", got)
	}
}

func TestTryEvalPanicError(t *testing.T) {
	cause := errors.New("disk on fire")
	s := bounce.Suspend(func() bounce.Step[string] { panic(cause) })
	_, err := bounce.TryEval(s)
	if !bounce.ErrEvalPanicked.Is(err) {
		t.Fatalf("error kind = %v, want ErrEvalPanicked", err)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("error %q does not mention the cause", err)
	}
}

func TestPanicSurfacesLazily(t *testing.T) {
	reached := 0
	s := bounce.Done(0)
	for i := range 10 {
		s = bounce.Bind(s, func(x int) bounce.Step[int] {
			if i == 7 {
				panic("step 7")
			}
			reached++
			return bounce.Done(x + 1)
		})
	}
	if reached != 0 {
		t.Fatal("continuations ran at construction")
	}
	if _, err := bounce.TryEval(s); err == nil {
		t.Fatal("TryEval error = nil, want panic from step 7")
	}
	if reached != 7 {
		t.Errorf("continuations before failure = %d, want 7", reached)
	}
}
