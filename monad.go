// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Monad operations for Step.
//
// Minimal definition: Done (unit) and Bind are necessary and sufficient.
// Map, Then, Join and Zip are derived.
//
// Construction never applies a continuation, even when m is already Done.
// Continuations run only while the evaluator reduces the bind, so failures
// surface lazily and recursive definitions written with Bind stay off the
// native stack.

// Bind sequences m with f: run m to completion, then run f on its result.
// Both right-nested and left-nested chains of Bind evaluate in amortized
// linear time and constant native stack.
func Bind[A, B any](m Step[A], f func(A) Step[B]) Step[B] {
	return Step[B]{f: &bindFrame{
		sub: m.f,
		k: leaf(func(a Erased) frame {
			return f(unerase[A](a)).f
		}),
	}}
}

// Map applies a pure function to the result of m.
// Map(m, f) is Bind(m, func(a A) Step[B] { return Done(f(a)) }).
func Map[A, B any](m Step[A], f func(A) B) Step[B] {
	return Step[B]{f: &bindFrame{
		sub: m.f,
		k: leaf(func(a Erased) frame {
			return &doneFrame{value: f(unerase[A](a))}
		}),
	}}
}

// Then sequences m before n, discarding the result of m.
func Then[A, B any](m Step[A], n Step[B]) Step[B] {
	return Step[B]{f: &bindFrame{
		sub: m.f,
		k: leaf(func(Erased) frame {
			return n.f
		}),
	}}
}

// Join flattens a Step that produces a Step.
func Join[A any](mm Step[Step[A]]) Step[A] {
	return Bind(mm, func(m Step[A]) Step[A] { return m })
}

// Zip sequences m with f and combines both results with g.
func Zip[A, B, C any](m Step[A], f func(A) Step[B], g func(A, B) C) Step[C] {
	return Bind(m, func(a A) Step[C] {
		return Map(f(a), func(b B) C { return g(a, b) })
	})
}
