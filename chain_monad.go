// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Sequence operations for Chain.
//
// ChainLast (unit) and ChainBind satisfy the monad laws under the equality
// "enumerates to the same elements". Map, Filter and Flatten are derived
// from ChainBind and inherit its rotation of left-nested binds.

// ChainBind replaces every element a of c with the sequence f(a), in order.
// Both right-nested and left-nested chains of ChainBind enumerate in
// amortized linear time and constant native stack.
func ChainBind[A, B any](c Chain[A], f func(A) Chain[B]) Chain[B] {
	return Chain[B]{l: &bindLink{
		sub: c.l,
		k: leaf(func(a Erased) link {
			return f(unerase[A](a)).l
		}),
	}}
}

// ChainMap applies f to every element of c.
func ChainMap[A, B any](c Chain[A], f func(A) B) Chain[B] {
	return Chain[B]{l: &bindLink{
		sub: c.l,
		k: leaf(func(a Erased) link {
			return &yieldLink{value: f(unerase[A](a))}
		}),
	}}
}

// ChainFilter keeps the elements of c for which keep returns true.
func ChainFilter[A any](c Chain[A], keep func(A) bool) Chain[A] {
	return Chain[A]{l: &bindLink{
		sub: c.l,
		k: leaf(func(a Erased) link {
			if keep(unerase[A](a)) {
				return &yieldLink{value: a}
			}
			return nil
		}),
	}}
}

// ChainConcat returns begin followed by end.
// Neither operand is evaluated until the result is enumerated.
func ChainConcat[A any](begin, end Chain[A]) Chain[A] {
	return Chain[A]{l: concatLinks(begin.l, end.l)}
}

// ChainFlatten concatenates a sequence of sequences.
func ChainFlatten[A any](cc Chain[Chain[A]]) Chain[A] {
	return ChainBind(cc, func(c Chain[A]) Chain[A] { return c })
}

// ChainFoldRight folds c from the right into a Step.
//
// f receives each element and the not-yet-evaluated fold of the remainder,
// so a lazy f may stop early without forcing the rest of c.
func ChainFoldRight[A, B any](c Chain[A], z B, f func(A, Step[B]) Step[B]) Step[B] {
	return Suspend(func() Step[B] {
		a, rest, ok := c.Uncons()
		if !ok {
			return Done(z)
		}
		return f(a, ChainFoldRight(rest, z, f))
	})
}
