// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrEvalPanicked is returned by [TryEval] when a continuation panics.
// The recovered value is available through the error's Cause when it
// was itself an error.
var ErrEvalPanicked = errors.NewKind("bounce: evaluation panicked: %v")

// TryEval evaluates s like [Step.Eval] but reports a panic raised by a
// continuation as an error of kind [ErrEvalPanicked].
//
// Native stack exhaustion is fatal in Go and is never recovered; the
// evaluator is built so that it cannot occur.
func TryEval[A any](s Step[A]) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero A
			a = zero
			if cause, ok := r.(error); ok {
				err = ErrEvalPanicked.Wrap(cause, cause)
				return
			}
			err = ErrEvalPanicked.New(r)
		}
	}()
	return s.Eval(), nil
}
