// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"io"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	DefaultN        = 1_000_000
	DefaultMaxDepth = 1000
)

// Entry selects one probe. Zero N or MaxDepth inherit the plan's values.
type Entry struct {
	Name     string `yaml:"name"`
	N        int    `yaml:"n,omitempty"`
	MaxDepth uint   `yaml:"max_depth,omitempty"`
}

// Plan describes a probe run. An empty Probes list selects every
// registered probe.
type Plan struct {
	N        int     `yaml:"n"`
	MaxDepth uint    `yaml:"max_depth"`
	Parallel int     `yaml:"parallel"`
	Probes   []Entry `yaml:"probes,omitempty"`
}

// DefaultPlan returns a plan running all probes at the default sizes.
func DefaultPlan() Plan {
	return Plan{
		N:        DefaultN,
		MaxDepth: DefaultMaxDepth,
		Parallel: runtime.GOMAXPROCS(0),
	}
}

// LoadPlan decodes a YAML plan on top of DefaultPlan. Unknown keys are
// rejected. The result is validated.
func LoadPlan(r io.Reader) (Plan, error) {
	p := DefaultPlan()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Plan{}, ErrInvalidConfig.Wrap(err, err.Error())
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Validate reports the first problem with p as ErrInvalidConfig.
func (p Plan) Validate() error {
	switch {
	case p.N < 0:
		return ErrInvalidConfig.New("n must not be negative")
	case p.Parallel < 1:
		return ErrInvalidConfig.New("parallel must be at least 1")
	}
	for _, e := range p.Probes {
		if e.Name == "" {
			return ErrInvalidConfig.New("probe entry without a name")
		}
		if e.N < 0 {
			return ErrInvalidConfig.New("probe " + e.Name + ": n must not be negative")
		}
	}
	return nil
}

// Entries resolves the plan into concrete probes and their parameters.
func (p Plan) Entries() ([]Probe, []Params, error) {
	entries := p.Probes
	if len(entries) == 0 {
		for _, name := range Names() {
			entries = append(entries, Entry{Name: name})
		}
	}
	probes := make([]Probe, 0, len(entries))
	params := make([]Params, 0, len(entries))
	for _, e := range entries {
		pr, err := Lookup(e.Name)
		if err != nil {
			return nil, nil, err
		}
		pa := Params{N: p.N, MaxDepth: p.MaxDepth}
		if e.N != 0 {
			pa.N = e.N
		}
		if e.MaxDepth != 0 {
			pa.MaxDepth = e.MaxDepth
		}
		probes = append(probes, pr)
		params = append(params, pa)
	}
	return probes, params, nil
}

// Select restricts p to the named probes. Per-probe overrides already in
// the plan are kept.
func (p Plan) Select(names ...string) Plan {
	if len(names) == 0 {
		return p
	}
	selected := make([]Entry, len(names))
	for i, name := range names {
		selected[i] = Entry{Name: name}
		for _, e := range p.Probes {
			if e.Name == name {
				selected[i] = e
				break
			}
		}
	}
	p.Probes = selected
	return p
}
