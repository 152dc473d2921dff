// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import (
	"iter"
	"sync"
)

// ToChain adapts an external sequence into a Chain.
//
// One element is pulled from seq each time a new Yield is demanded. Every
// pulled position is memoized, so enumerating the result again replays the
// same elements without touching seq. seq is pulled at most once per
// position, and its pull state is released when seq is exhausted.
//
// A Chain that is abandoned before exhaustion keeps seq's pull state alive
// until the Chain itself is unreachable.
func ToChain[A any](seq iter.Seq[A]) Chain[A] {
	next, stop := iter.Pull(seq)
	return Chain[A]{l: pullLink(next, stop)}
}

func pullLink[A any](next func() (A, bool), stop func()) link {
	return &suspendLink{resume: sync.OnceValue(func() link {
		a, ok := next()
		if !ok {
			stop()
			return nil
		}
		return &yieldLink{value: a, rest: pullLink(next, stop)}
	})}
}
