// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/bounce"
)

// Result is the outcome of one probe run. Err is nil on success,
// ErrProbeMismatch on a wrong value, or bounce.ErrEvalPanicked when the
// workload panicked.
type Result struct {
	Name    string
	Params  Params
	Got     int64
	Want    int64
	Elapsed time.Duration
	Err     error
}

// OK reports whether the probe produced the expected value.
func (r Result) OK() bool { return r.Err == nil }

// Failed reports whether any result carries an error.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.OK() {
			return true
		}
	}
	return false
}

// Runner executes plans.
type Runner struct {
	Log *logrus.Entry
}

// NewRunner returns a Runner logging through the standard logrus logger.
func NewRunner() *Runner {
	return &Runner{Log: logrus.NewEntry(logrus.StandardLogger())}
}

// Run executes every probe selected by plan, at most plan.Parallel at a
// time, and returns results in plan order. A failing probe is reported in
// its Result and does not stop the others. The returned error is non-nil
// only for an invalid plan or a cancelled context.
func (r *Runner) Run(ctx context.Context, plan Plan) ([]Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	probes, params, err := plan.Entries()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(probes))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(plan.Parallel)
	for i := range probes {
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return egCtx.Err()
			}
			results[i] = r.runOne(probes[i], params[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

type outcome struct {
	got, want int64
}

func (r *Runner) runOne(p Probe, params Params) Result {
	lgr := r.logger().WithFields(logrus.Fields{
		"probe":     p.Name,
		"n":         params.N,
		"max_depth": params.MaxDepth,
	})
	lgr.Debug("probe started")

	start := time.Now()
	out, err := bounce.TryEval(bounce.Delay(func() outcome {
		got, want := p.Run(params)
		return outcome{got, want}
	}))
	res := Result{
		Name:    p.Name,
		Params:  params,
		Got:     out.got,
		Want:    out.want,
		Elapsed: time.Since(start),
		Err:     err,
	}
	if err == nil && out.got != out.want {
		res.Err = ErrProbeMismatch.New(p.Name, out.got, out.want)
	}

	lgr = lgr.WithField("elapsed", res.Elapsed)
	if res.Err != nil {
		lgr.WithError(res.Err).Warn("probe failed")
	} else {
		lgr.Info("probe passed")
	}
	return res
}

func (r *Runner) logger() *logrus.Entry {
	if r.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return r.Log
}
