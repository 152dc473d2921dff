// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// DefaultMaxDepth is the native call budget used by [Fix] and [ChainFix].
const DefaultMaxDepth = 1000

// Fix builds a stack-safe recursive function from body.
//
// body receives the recursive call and returns one layer of the function.
// Every DefaultMaxDepth logical calls, the recursive call is replaced by a
// Suspend boundary that returns to the evaluator before resuming with a
// fresh budget.
//
//	countdown := bounce.Fix(func(recur func(int) bounce.Step[int]) func(int) bounce.Step[int] {
//		return func(n int) bounce.Step[int] {
//			if n == 0 {
//				return bounce.Done(0)
//			}
//			return recur(n - 1)
//		}
//	})
//	countdown(1_000_000).Eval() // 0
//
// The budget bounds uniform tail-recursive depth. A body that itself
// consumes deep native stack between recursive calls is not covered.
func Fix[A, B any](body func(recur func(A) Step[B]) func(A) Step[B]) func(A) Step[B] {
	return FixN(body, DefaultMaxDepth)
}

// FixN is [Fix] with an explicit budget.
// A maxDepth of 0 suspends on every recursive call.
func FixN[A, B any](body func(recur func(A) Step[B]) func(A) Step[B], maxDepth uint) func(A) Step[B] {
	return fixAt(body, maxDepth, maxDepth)
}

// fixAt threads the remaining budget n through each layer.
func fixAt[A, B any](body func(func(A) Step[B]) func(A) Step[B], n, maxDepth uint) func(A) Step[B] {
	return func(a A) Step[B] {
		if n == 0 {
			return body(func(x A) Step[B] {
				return Suspend(func() Step[B] {
					return fixAt(body, maxDepth, maxDepth)(x)
				})
			})(a)
		}
		return body(fixAt(body, n-1, maxDepth))(a)
	}
}

// Recur is [Fix] followed by evaluation.
func Recur[A, B any](body func(recur func(A) Step[B]) func(A) Step[B]) func(A) B {
	return RecurN(body, DefaultMaxDepth)
}

// RecurN is [FixN] followed by evaluation.
func RecurN[A, B any](body func(recur func(A) Step[B]) func(A) Step[B], maxDepth uint) func(A) B {
	f := FixN(body, maxDepth)
	return func(a A) B {
		return f(a).Eval()
	}
}

// ChainFix is [Fix] for recursive sequence definitions.
func ChainFix[A, B any](body func(recur func(A) Chain[B]) func(A) Chain[B]) func(A) Chain[B] {
	return ChainFixN(body, DefaultMaxDepth)
}

// ChainFixN is [ChainFix] with an explicit budget.
// A maxDepth of 0 suspends on every recursive call.
func ChainFixN[A, B any](body func(recur func(A) Chain[B]) func(A) Chain[B], maxDepth uint) func(A) Chain[B] {
	return chainFixAt(body, maxDepth, maxDepth)
}

func chainFixAt[A, B any](body func(func(A) Chain[B]) func(A) Chain[B], n, maxDepth uint) func(A) Chain[B] {
	return func(a A) Chain[B] {
		if n == 0 {
			return body(func(x A) Chain[B] {
				return ChainSuspend(func() Chain[B] {
					return chainFixAt(body, maxDepth, maxDepth)(x)
				})
			})(a)
		}
		return body(chainFixAt(body, n-1, maxDepth))(a)
	}
}
