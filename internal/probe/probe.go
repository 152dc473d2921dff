// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package probe runs deep-recursion workloads against package bounce and
// checks that each completes with the expected value instead of exhausting
// the goroutine stack.
package probe

import (
	"golang.org/x/sync/errgroup"
	"gopkg.in/src-d/go-errors.v1"

	"code.hybscloud.com/bounce"
)

var (
	// ErrProbeMismatch is returned when a probe completes with a wrong value.
	ErrProbeMismatch = errors.NewKind("probe %s: got %d, want %d")
	// ErrUnknownProbe is returned for a probe name missing from the registry.
	ErrUnknownProbe = errors.NewKind("unknown probe %q")
	// ErrInvalidConfig is returned for a plan that fails validation.
	ErrInvalidConfig = errors.NewKind("invalid config: %s")
)

// Params sizes a single probe run.
type Params struct {
	N        int
	MaxDepth uint
}

// Probe is a named workload. Run returns the value the workload computed
// and the value it should have computed.
type Probe struct {
	Name string
	Run  func(Params) (got, want int64)
}

// Registry is the ordered set of built-in probes.
var Registry = []Probe{
	{Name: "suspend-chain", Run: suspendChain},
	{Name: "bind-right", Run: bindRight},
	{Name: "bind-left", Run: bindLeft},
	{Name: "fix-countdown", Run: fixCountdown},
	{Name: "iterate-nth", Run: iterateNth},
	{Name: "concat-stress", Run: concatStress},
	{Name: "chain-bind-left", Run: chainBindLeft},
	{Name: "map-left", Run: mapLeft},
	{Name: "lazy-shared", Run: lazyShared},
}

// Lookup returns the registered probe with the given name.
func Lookup(name string) (Probe, error) {
	for _, p := range Registry {
		if p.Name == name {
			return p, nil
		}
	}
	return Probe{}, ErrUnknownProbe.New(name)
}

// Names returns the registered probe names in registry order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, p := range Registry {
		names[i] = p.Name
	}
	return names
}

func suspendChain(p Params) (int64, int64) {
	return iterate(int64(p.N)).Eval(), int64(p.N)
}

func bindRight(p Params) (int64, int64) {
	var loop func(i int64) bounce.Step[int64]
	loop = func(i int64) bounce.Step[int64] {
		if i == int64(p.N) {
			return bounce.Done(i)
		}
		return bounce.Bind(bounce.Done(i+1), loop)
	}
	return loop(0).Eval(), int64(p.N)
}

func bindLeft(p Params) (int64, int64) {
	s := bounce.Done(int64(0))
	for range p.N {
		s = bounce.Bind(s, func(x int64) bounce.Step[int64] {
			return bounce.Done(x + 1)
		})
	}
	return s.Eval(), int64(p.N)
}

type countdown struct {
	left, acc int64
}

func fixCountdown(p Params) (int64, int64) {
	run := bounce.RecurN(func(recur func(countdown) bounce.Step[int64]) func(countdown) bounce.Step[int64] {
		return func(c countdown) bounce.Step[int64] {
			if c.left == 0 {
				return bounce.Done(c.acc)
			}
			return recur(countdown{c.left - 1, c.acc + 1})
		}
	}, p.MaxDepth)
	return run(countdown{left: int64(p.N)}), int64(p.N)
}

func iterateNth(p Params) (int64, int64) {
	nats := bounce.ChainIterate(int64(0), func(x int64) int64 { return x + 1 })
	var i int
	for v := range nats.All() {
		if i == p.N {
			return v, int64(p.N)
		}
		i++
	}
	return -1, int64(p.N)
}

func concatStress(p Params) (int64, int64) {
	c := bounce.ChainEnd[int64]()
	for i := range p.N {
		c = bounce.ChainConcat(c, bounce.ChainLast(int64(i)))
	}
	var sum int64
	for v := range c.All() {
		sum += v
	}
	n := int64(p.N)
	return sum, n * (n - 1) / 2
}

func chainBindLeft(p Params) (int64, int64) {
	c := bounce.ChainLast(int64(0))
	for range p.N {
		c = bounce.ChainBind(c, func(x int64) bounce.Chain[int64] {
			return bounce.ChainLast(x + 1)
		})
	}
	head, _, ok := c.Uncons()
	if !ok {
		return -1, int64(p.N)
	}
	return head, int64(p.N)
}

func mapLeft(p Params) (int64, int64) {
	s := bounce.Done(int64(0))
	for range p.N {
		s = bounce.Map(s, func(x int64) int64 { return x + 1 })
	}
	return s.Eval(), int64(p.N)
}

const lazyReaders = 4

// lazyShared forces one deep Lazy step from several goroutines at once.
// Every reader must observe the same published value.
func lazyShared(p Params) (int64, int64) {
	shared := bounce.Lazy(iterate(int64(p.N)))
	seen := make([]int64, lazyReaders)
	var g errgroup.Group
	for i := range lazyReaders {
		g.Go(func() error {
			seen[i] = shared.Eval()
			return nil
		})
	}
	g.Wait()
	for _, v := range seen[1:] {
		if v != seen[0] {
			return v, seen[0]
		}
	}
	return seen[0], int64(p.N)
}

// iterate counts from 0 to n with one Suspend per increment.
func iterate(n int64) bounce.Step[int64] {
	var loop func(i int64) bounce.Step[int64]
	loop = func(i int64) bounce.Step[int64] {
		if i == n {
			return bounce.Done(i)
		}
		return bounce.Suspend(func() bounce.Step[int64] { return loop(i + 1) })
	}
	return loop(0)
}
