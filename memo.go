// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Memo is a single-assignment cell holding the result of a Step.
//
// Unlike [Lazy], which tolerates duplicate work under races, Memo evaluates
// its computation exactly once: concurrent callers block until the first
// one publishes. Reads after publication are lock-free.
//
// Forcing a Memo from inside its own computation on the same goroutine
// panics instead of deadlocking.
type Memo[A any] struct {
	mu    sync.Mutex
	owner atomic.Int64
	value atomic.Pointer[A]
	comp  Step[A]
}

// Thunk creates a Memo for m. m is not evaluated until [Memo.Step] or
// [Memo.Get] is called.
func Thunk[A any](m Step[A]) *Memo[A] {
	return &Memo[A]{comp: m}
}

// Step forces the cell and returns its value as a Done step.
func (m *Memo[A]) Step() Step[A] {
	return Done(m.Get())
}

// Get forces the cell and returns its value.
// If the computation panics the cell stays unevaluated and the panic
// propagates; a later call retries.
func (m *Memo[A]) Get() A {
	if v := m.value.Load(); v != nil {
		return *v
	}
	gid := goid.Get()
	if m.owner.Load() == gid {
		panic("bounce: memo forced recursively")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v := m.value.Load(); v != nil {
		return *v
	}
	m.owner.Store(gid)
	defer m.owner.Store(0)

	a := m.comp.Eval()
	m.value.Store(&a)
	m.comp = Step[A]{}
	return a
}

// Forced reports whether the cell holds a value.
func (m *Memo[A]) Forced() bool {
	return m.value.Load() != nil
}
