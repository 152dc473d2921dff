// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// advance performs one reduction of a Step frame.
// Done is a fixed point. Bind is reduced by advanceBind, which never recurses.
func advance(f frame) frame {
	switch t := f.(type) {
	case nil, *doneFrame:
		return f
	case *suspendFrame:
		return t.resume()
	case *bindFrame:
		return advanceBind(t.sub, t.k)
	case *lazyFrame:
		return t.force()
	default:
		panic("bounce: unknown step frame")
	}
}

// advanceBind reduces Bind(sub, k) by one productive step.
//
// A left-nested Bind(Bind(x, f), g) is rewritten to Bind(x, f then g)
// while descending, which is Bind(x, a -> Bind(f(a), g)) with the inner
// bind kept as data. The spine is consumed in a loop, so neither long
// left spines nor long continuation sequences grow the native stack.
func advanceBind(sub frame, k *conts[frame]) frame {
	for {
		switch s := sub.(type) {
		case nil:
			return applyFrame(k, nil)
		case *doneFrame:
			return applyFrame(k, s.value)
		case *suspendFrame:
			return &bindFrame{sub: s.resume(), k: k}
		case *lazyFrame:
			return &bindFrame{sub: s.force(), k: k}
		case *bindFrame:
			sub, k = s.sub, joinConts(s.k, k)
		default:
			panic("bounce: unknown step frame in bind")
		}
	}
}

// applyFrame feeds v to the first continuation of k and binds the rest.
func applyFrame(k *conts[frame], v Erased) frame {
	f, rest := k.pop()
	next := f(v)
	if rest == nil {
		return next
	}
	return &bindFrame{sub: next, k: rest}
}

// force returns the memoized result, or a bind that evaluates inner and
// publishes the first result to reach the memo slot.
func (l *lazyFrame) force() frame {
	if d := l.memo.Load(); d != nil {
		return d
	}
	return &bindFrame{sub: l.inner, k: leaf(l.settle)}
}

// settle publishes v unless a concurrent force already won.
// Every caller observes the winning value.
func (l *lazyFrame) settle(v Erased) frame {
	l.memo.CompareAndSwap(nil, &doneFrame{value: v})
	return l.memo.Load()
}

// run drives f to a doneFrame and returns its erased value.
func run(f frame) Erased {
	for {
		switch t := f.(type) {
		case nil:
			return nil
		case *doneFrame:
			return t.value
		}
		f = advance(f)
	}
}

// advanceChain performs one reduction of a Chain link.
// Yield advances to its rest; callers read the value first.
func advanceChain(l link) link {
	switch t := l.(type) {
	case nil:
		return nil
	case *yieldLink:
		return t.rest
	case *suspendLink:
		return t.resume()
	case *concatLink:
		return advanceConcat(t.begin, t.end)
	case *bindLink:
		return advanceChainBind(t.sub, t.k)
	default:
		panic("bounce: unknown chain link")
	}
}

// advanceConcat reduces Concat(begin, end) incrementally.
//
// Concat(Concat(x, y), z) is rotated to Concat(x, Concat(y, z)).
// A Yield at the head of begin is surfaced: Concat(Yield(a, r), e)
// becomes Yield(a, Concat(r, e)).
func advanceConcat(begin, end link) link {
	for {
		switch b := begin.(type) {
		case nil:
			return end
		case *yieldLink:
			return &yieldLink{value: b.value, rest: concatLinks(b.rest, end)}
		case *suspendLink:
			return concatLinks(b.resume(), end)
		case *bindLink:
			return concatLinks(advanceChainBind(b.sub, b.k), end)
		case *concatLink:
			begin, end = b.begin, concatLinks(b.end, end)
		default:
			panic("bounce: unknown chain link in concat")
		}
	}
}

// advanceChainBind reduces Bind(sub, k) by one productive step,
// rewriting left-nested binds exactly as advanceBind does.
//
// For a Yield the first continuation may produce several values, so the
// result is Concat(Bind(f(a), rest of k), Bind(tail, k)).
func advanceChainBind(sub link, k *conts[link]) link {
	for {
		switch s := sub.(type) {
		case nil:
			return nil
		case *yieldLink:
			f, rest := k.pop()
			head := f(s.value)
			if rest != nil && head != nil {
				head = &bindLink{sub: head, k: rest}
			}
			if s.rest == nil {
				return head
			}
			return concatLinks(head, &bindLink{sub: s.rest, k: k})
		case *suspendLink:
			return &bindLink{sub: s.resume(), k: k}
		case *concatLink:
			return &concatLink{
				begin: &bindLink{sub: s.begin, k: k},
				end:   &bindLink{sub: s.end, k: k},
			}
		case *bindLink:
			sub, k = s.sub, joinConts(s.k, k)
		default:
			panic("bounce: unknown chain link in bind")
		}
	}
}

// concatLinks joins two links.
// End is the identity on either side, so no concatLink is allocated for it.
func concatLinks(begin, end link) link {
	if begin == nil {
		return end
	}
	if end == nil {
		return begin
	}
	return &concatLink{begin: begin, end: end}
}
