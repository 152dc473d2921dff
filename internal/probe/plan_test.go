// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlan(t *testing.T) {
	const doc = `
n: 5000
max_depth: 64
parallel: 2
probes:
  - name: bind-left
  - name: fix-countdown
    max_depth: 3
  - name: iterate-nth
    n: 10
`
	p, err := LoadPlan(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 5000, p.N)
	assert.Equal(t, uint(64), p.MaxDepth)
	assert.Equal(t, 2, p.Parallel)

	probes, params, err := p.Entries()
	require.NoError(t, err)
	require.Len(t, probes, 3)
	assert.Equal(t, "bind-left", probes[0].Name)
	assert.Equal(t, []Params{
		{N: 5000, MaxDepth: 64},
		{N: 5000, MaxDepth: 3},
		{N: 10, MaxDepth: 64},
	}, params)
}

func TestLoadPlanEmpty(t *testing.T) {
	p, err := LoadPlan(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPlan(), p)

	probes, _, err := p.Entries()
	require.NoError(t, err)
	assert.Len(t, probes, len(Registry))
}

func TestLoadPlanPartialKeepsDefaults(t *testing.T) {
	p, err := LoadPlan(strings.NewReader("n: 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, p.N)
	assert.Equal(t, uint(DefaultMaxDepth), p.MaxDepth)
	assert.Equal(t, DefaultPlan().Parallel, p.Parallel)
}

func TestLoadPlanInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":      "depth: 10\n",
		"bad type":         "n: lots\n",
		"negative n":       "n: -1\n",
		"zero parallel":    "parallel: 0\n",
		"unnamed entry":    "probes:\n  - n: 3\n",
		"negative entry n": "probes:\n  - name: bind-left\n    n: -4\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadPlan(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, ErrInvalidConfig.Is(err), "error = %v", err)
		})
	}
}

func TestEntriesUnknownProbe(t *testing.T) {
	p := DefaultPlan().Select("bind-left", "bogus")
	_, _, err := p.Entries()
	require.Error(t, err)
	assert.True(t, ErrUnknownProbe.Is(err))
}

func TestSelectKeepsOverrides(t *testing.T) {
	p := DefaultPlan()
	p.Probes = []Entry{{Name: "map-left", N: 7}, {Name: "bind-left"}}

	got := p.Select("map-left", "iterate-nth")
	assert.Equal(t, []Entry{{Name: "map-left", N: 7}, {Name: "iterate-nth"}}, got.Probes)
	assert.Equal(t, p, p.Select(), "empty selection keeps the plan")
}
