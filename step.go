// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Step is a stack-safe computation that eventually yields one value of type A.
//
// A Step is immutable once built. The zero Step is Done with the zero value.
type Step[A any] struct {
	f frame
}

// Done lifts an already-known value into a terminal Step.
func Done[A any](a A) Step[A] {
	return Step[A]{f: &doneFrame{value: a}}
}

// Suspend defers producing a Step until the evaluator asks for it.
// Returning control to the driver loop is how recursion avoids the native stack.
func Suspend[A any](resume func() Step[A]) Step[A] {
	return Step[A]{f: &suspendFrame{resume: func() frame {
		return resume().f
	}}}
}

// Delay suspends a pure function: Suspend(func() Step[A] { return Done(f()) }).
func Delay[A any](f func() A) Step[A] {
	return Step[A]{f: &suspendFrame{resume: func() frame {
		return &doneFrame{value: f()}
	}}}
}

// Lazy wraps m so that it is evaluated at most once per winning evaluation.
// After the first evaluation completes, every later evaluation of the
// returned Step (and of any Step built from it) is O(1).
//
// Concurrent first evaluations may both do the work; exactly one result is
// published and all of them observe it.
func Lazy[A any](m Step[A]) Step[A] {
	return Step[A]{f: &lazyFrame{inner: m.f}}
}

// Defer is [Lazy].
func Defer[A any](m Step[A]) Step[A] {
	return Lazy(m)
}

// Advance performs a single reduction step.
// Done returns itself; Suspend returns its resumed Step; Bind and Lazy
// perform one productive reduction of their left operand.
func (s Step[A]) Advance() Step[A] {
	return Step[A]{f: advance(s.f)}
}

// Eval drives the computation to Done and returns its value.
// Auxiliary native stack use is constant regardless of how many
// reductions are required.
//
// A panic raised by a continuation propagates from Eval at the point the
// failing step is reduced. Use [TryEval] to receive it as an error.
func (s Step[A]) Eval() A {
	return unerase[A](run(s.f))
}

// IsDone reports whether s is terminal.
func (s Step[A]) IsDone() bool {
	switch s.f.(type) {
	case nil, *doneFrame:
		return true
	}
	return false
}

// Kind reports the variant at the head of s.
func (s Step[A]) Kind() Kind {
	switch s.f.(type) {
	case nil, *doneFrame:
		return KindDone
	case *suspendFrame:
		return KindSuspend
	case *bindFrame:
		return KindBind
	case *lazyFrame:
		return KindLazy
	default:
		panic("bounce: unknown step frame")
	}
}
