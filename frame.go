// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import "sync/atomic"

// Erased represents a type-erased value carried between frames.
// Bind frames hide their intermediate type behind Erased; concrete types
// are recovered by the typed wrappers in [Bind] and [ChainBind].
type Erased = any

// unerase recovers a concrete value from an Erased slot.
// A nil slot is the zero value of A (zero Step and zero Chain carry no value).
func unerase[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// frame is the closed set of Step variants.
// A nil frame is Done with the zero value.
type frame interface {
	stepFrame()
}

// doneFrame is terminal and carries the final result.
type doneFrame struct {
	value Erased
}

// suspendFrame defers producing the next frame until resumed.
type suspendFrame struct {
	resume func() frame
}

// bindFrame reduces sub to a value, then feeds it through k.
type bindFrame struct {
	sub frame
	k   *conts[frame]
}

// lazyFrame memoizes inner once it reaches a doneFrame.
// memo transitions at most once from nil to the winning doneFrame.
type lazyFrame struct {
	inner frame
	memo  atomic.Pointer[doneFrame]
}

func (*doneFrame) stepFrame()    {}
func (*suspendFrame) stepFrame() {}
func (*bindFrame) stepFrame()    {}
func (*lazyFrame) stepFrame()    {}

// link is the closed set of Chain variants.
// A nil link is End.
type link interface {
	chainLink()
}

// yieldLink emits value, then continues with rest.
type yieldLink struct {
	value Erased
	rest  link
}

// suspendLink defers producing the next link until resumed.
type suspendLink struct {
	resume func() link
}

// concatLink is begin followed by end.
type concatLink struct {
	begin link
	end   link
}

// bindLink splices k(v) in place of every value v produced by sub.
type bindLink struct {
	sub link
	k   *conts[link]
}

func (*yieldLink) chainLink()   {}
func (*suspendLink) chainLink() {}
func (*concatLink) chainLink()  {}
func (*bindLink) chainLink()    {}

// conts is a catenable sequence of continuations, applied first to last.
// A node is either a leaf (f != nil) or a pair whose first and rest are
// both non-nil.
type conts[R any] struct {
	f     func(Erased) R
	first *conts[R]
	rest  *conts[R]
}

// leaf wraps a single continuation.
func leaf[R any](f func(Erased) R) *conts[R] {
	return &conts[R]{f: f}
}

// joinConts returns first followed by rest in O(1).
// nil is the identity on either side.
func joinConts[R any](first, rest *conts[R]) *conts[R] {
	if first == nil {
		return rest
	}
	if rest == nil {
		return first
	}
	return &conts[R]{first: first, rest: rest}
}

// pop splits off the first continuation.
// A left-nested pair ((a, b), c) is rotated to (a, (b, c)) until the head is
// a leaf. Popping a whole sequence costs time linear in its length.
func (k *conts[R]) pop() (func(Erased) R, *conts[R]) {
	for {
		if k.f != nil {
			return k.f, nil
		}
		if k.first.f != nil {
			return k.first.f, k.rest
		}
		k = &conts[R]{first: k.first.first, rest: joinConts(k.first.rest, k.rest)}
	}
}

// Kind names the variant at the head of a [Step] or [Chain].
type Kind uint8

const (
	KindDone Kind = iota
	KindSuspend
	KindBind
	KindLazy
	KindEnd
	KindYield
	KindConcat
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "Done"
	case KindSuspend:
		return "Suspend"
	case KindBind:
		return "Bind"
	case KindLazy:
		return "Lazy"
	case KindEnd:
		return "End"
	case KindYield:
		return "Yield"
	case KindConcat:
		return "Concat"
	default:
		return "Kind(?)"
	}
}
