// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import "iter"

// Chain is a stack-safe lazy sequence of values of type A, possibly infinite.
//
// Chain follows the same trampolining discipline as [Step], adding a Yield
// variant that emits a value and a Concat variant that joins two sequences.
// Bind and Concat nodes are structural and never observed by consumers.
//
// A Chain is immutable once built, so the same Chain may be enumerated any
// number of times. The zero Chain is End.
type Chain[A any] struct {
	l link
}

// ChainEnd returns the empty sequence.
func ChainEnd[A any]() Chain[A] {
	return Chain[A]{}
}

// ChainLast returns the sequence holding only a.
func ChainLast[A any](a A) Chain[A] {
	return Chain[A]{l: &yieldLink{value: a}}
}

// ChainYield returns the sequence a followed by rest.
func ChainYield[A any](a A, rest Chain[A]) Chain[A] {
	return Chain[A]{l: &yieldLink{value: a, rest: rest.l}}
}

// ChainSuspend defers producing a sequence until it is enumerated.
func ChainSuspend[A any](resume func() Chain[A]) Chain[A] {
	return Chain[A]{l: &suspendLink{resume: func() link {
		return resume().l
	}}}
}

// ChainIterate returns the infinite sequence seed, f(seed), f(f(seed)), ...
// f is applied only when the following element is demanded.
func ChainIterate[A any](seed A, f func(A) A) Chain[A] {
	return Chain[A]{l: iterateLink(seed, f)}
}

func iterateLink[A any](a A, f func(A) A) link {
	return &yieldLink{value: a, rest: &suspendLink{resume: func() link {
		return iterateLink(f(a), f)
	}}}
}

// ChainOf returns the finite sequence of xs.
func ChainOf[A any](xs ...A) Chain[A] {
	var l link
	for i := len(xs) - 1; i >= 0; i-- {
		l = &yieldLink{value: xs[i], rest: l}
	}
	return Chain[A]{l: l}
}

// Advance performs a single reduction step.
// End returns itself; Yield returns its rest, so read the value with
// [Chain.Uncons] or [Chain.All] rather than by advancing past it.
func (c Chain[A]) Advance() Chain[A] {
	return Chain[A]{l: advanceChain(c.l)}
}

// Kind reports the variant at the head of c.
func (c Chain[A]) Kind() Kind {
	switch c.l.(type) {
	case nil:
		return KindEnd
	case *yieldLink:
		return KindYield
	case *suspendLink:
		return KindSuspend
	case *concatLink:
		return KindConcat
	case *bindLink:
		return KindBind
	default:
		panic("bounce: unknown chain link")
	}
}

// IsEnd reports whether c is syntactically End.
// A Chain that reduces to End without yielding still reports false until
// it has been advanced.
func (c Chain[A]) IsEnd() bool {
	return c.l == nil
}

// Uncons drives c to its next Yield or End.
// It returns the head and the remaining sequence, or ok == false at End.
func (c Chain[A]) Uncons() (head A, rest Chain[A], ok bool) {
	l := c.l
	for {
		switch t := l.(type) {
		case nil:
			return head, Chain[A]{}, false
		case *yieldLink:
			return unerase[A](t.value), Chain[A]{l: t.rest}, true
		}
		l = advanceChain(l)
	}
}

// All enumerates c lazily. Stopping the range early forces nothing beyond
// the last element delivered.
func (c Chain[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		l := c.l
		for l != nil {
			if y, ok := l.(*yieldLink); ok {
				if !yield(unerase[A](y.value)) {
					return
				}
				l = y.rest
				continue
			}
			l = advanceChain(l)
		}
	}
}

// Take returns up to n leading elements of c.
func (c Chain[A]) Take(n int) []A {
	if n <= 0 {
		return nil
	}
	out := make([]A, 0, min(n, 64))
	for a := range c.All() {
		out = append(out, a)
		if len(out) == n {
			break
		}
	}
	return out
}

// Collect returns every element of c. It does not return for an infinite c.
func (c Chain[A]) Collect() []A {
	var out []A
	for a := range c.All() {
		out = append(out, a)
	}
	return out
}
