// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNames(t *testing.T) {
	assert.Equal(t, []string{
		"suspend-chain",
		"bind-right",
		"bind-left",
		"fix-countdown",
		"iterate-nth",
		"concat-stress",
		"chain-bind-left",
		"map-left",
		"lazy-shared",
	}, Names())
}

func TestLookup(t *testing.T) {
	p, err := Lookup("bind-left")
	require.NoError(t, err)
	assert.Equal(t, "bind-left", p.Name)

	_, err = Lookup("no-such-probe")
	require.Error(t, err)
	assert.True(t, ErrUnknownProbe.Is(err))
}

func TestProbesSmall(t *testing.T) {
	for _, p := range Registry {
		for _, params := range []Params{
			{N: 0, MaxDepth: 0},
			{N: 1, MaxDepth: 1},
			{N: 1000, MaxDepth: 10},
			{N: 1000, MaxDepth: 1000},
		} {
			got, want := p.Run(params)
			assert.Equal(t, want, got, "%s %+v", p.Name, params)
		}
	}
}

func TestProbesDeep(t *testing.T) {
	n := 1_000_000
	if testing.Short() {
		n = 100_000
	}
	old := debug.SetMaxStack(16 << 20)
	defer debug.SetMaxStack(old)

	for _, p := range Registry {
		t.Run(p.Name, func(t *testing.T) {
			got, want := p.Run(Params{N: n, MaxDepth: DefaultMaxDepth})
			assert.Equal(t, want, got)
		})
	}
}

func TestConcatStressWant(t *testing.T) {
	got, want := concatStress(Params{N: 5})
	assert.Equal(t, int64(10), want)
	assert.Equal(t, want, got)
}
