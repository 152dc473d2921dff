// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bounce provides stack-safe evaluation of recursive computations
// and lazily generated sequences in Go.
//
// Deeply nested or deeply chained compositions (the millionth successor of
// a recursive definition, a million left-nested binds) are represented as
// data and driven to completion by an iterative loop instead of by native
// recursion. The evaluator runs in constant auxiliary native stack.
//
// # Step
//
// [Step] represents a computation that eventually yields one value.
// Its variants are a closed set:
//
//   - Done: terminal, carries the result
//   - Suspend: a deferred continuation producing the next Step
//   - Bind: reduce a sub-computation, then feed its value to a continuation
//   - Lazy: a memoizing wrapper evaluated at most once
//
// Constructors and combinators:
//
//   - [Done], [Suspend], [Delay], [Lazy], [Defer]
//   - [Bind], [Map], [Then], [Join], [Zip]
//   - [Step.Advance]: one reduction
//   - [Step.Eval]: reduce to Done and return the value
//   - [TryEval]: Eval reporting continuation panics as errors
//   - [Thunk]: an exactly-once [Memo] cell
//
// # Rotation
//
// Left-nested binds Bind(Bind(Bind(m, f), g), h) would make a naive
// evaluator re-walk the whole left spine at every reduction, costing O(n²)
// work. The evaluator instead rotates each Bind(Bind(x, f), g) it meets
// into Bind(x, a -> Bind(f(a), g)) while descending, so every spine node is
// visited once. The same rotation applies to [ChainBind] and to nested
// concatenation.
//
// # Chain
//
// [Chain] is a lazy, possibly infinite sequence built on the same
// discipline, adding Yield (emit one value and continue) and Concat
// (one sequence followed by another):
//
//   - [ChainEnd], [ChainLast], [ChainYield], [ChainSuspend]
//   - [ChainIterate], [ChainOf], [ToChain]
//   - [ChainBind], [ChainMap], [ChainFilter], [ChainConcat], [ChainFlatten]
//   - [ChainFoldRight]: fold into a Step
//   - [Chain.All], [Chain.Uncons], [Chain.Take], [Chain.Collect]
//
// # Fixed Points
//
// [Fix] turns a user-supplied recursive definition into a stack-safe one by
// inserting a Suspend boundary every [DefaultMaxDepth] logical calls;
// [FixN] takes an explicit budget. [ChainFix] and [ChainFixN] do the same
// for sequences, and [Recur] evaluates the fixed point directly.
//
// # Errors
//
// Continuations are free to panic. The panic surfaces from Eval or from
// enumeration at the point the failing step is reduced, never at
// construction time.
//
// # Concurrency
//
// Evaluation is synchronous and single-threaded. Independent Step and Chain
// values may be evaluated from different goroutines without coordination.
// The only shared mutable state is the memo slot of [Lazy] (benign duplicate
// work, a single published value) and of [Memo] (exactly once, blocking).
//
// # Example
//
//	sum := bounce.Done(0)
//	for i := range 1_000_000 {
//		sum = bounce.Bind(sum, func(s int) bounce.Step[int] {
//			return bounce.Done(s + i)
//		})
//	}
//	sum.Eval() // 499999500000
package bounce
