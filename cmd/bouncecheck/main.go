// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command bouncecheck runs deep-recursion probes against package bounce and
// reports whether each finished with the expected value.
//
//	bouncecheck [-n N] [--depth D] [--parallel P] [--config plan.yaml] [-v] [--no-color] [probe...]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	flag "github.com/juju/gnuflag"
	"github.com/sirupsen/logrus"

	"code.hybscloud.com/bounce/internal/probe"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], color.Output, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	n        int
	depth    uint
	parallel int
	config   string
	verbose  bool
	noColor  bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defaults := probe.DefaultPlan()
	var opts options
	fs := flag.NewFlagSet("bouncecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.n, "n", defaults.N, "problem size for every probe")
	fs.UintVar(&opts.depth, "depth", defaults.MaxDepth, "native recursion budget before a fixed point suspends")
	fs.IntVar(&opts.parallel, "parallel", defaults.Parallel, "probes run at once")
	fs.StringVar(&opts.config, "config", "", "YAML probe plan")
	fs.BoolVar(&opts.verbose, "verbose", false, "log each probe")
	fs.BoolVar(&opts.verbose, "v", false, "")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: bouncecheck [flags] [probe...]\n\nprobes: %s\n\n", strings.Join(probe.Names(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(true, args); err != nil {
		return 2
	}

	lgr := logrus.New()
	lgr.SetOutput(stderr)
	lgr.SetLevel(logrus.WarnLevel)
	if opts.verbose {
		lgr.SetLevel(logrus.InfoLevel)
	}

	plan, err := buildPlan(fs, opts)
	if err != nil {
		lgr.WithError(err).Error("bad configuration")
		return 2
	}
	plan = plan.Select(fs.Args()...)

	r := &probe.Runner{Log: logrus.NewEntry(lgr)}
	results, err := r.Run(ctx, plan)
	if err != nil {
		lgr.WithError(err).Error("run aborted")
		return 2
	}
	if err := probe.Report(stdout, results, !opts.noColor); err != nil {
		lgr.WithError(err).Error("writing report")
		return 2
	}
	if probe.Failed(results) {
		return 1
	}
	return 0
}

// buildPlan loads the -config file when given. Flags set explicitly on the
// command line override values from the file.
func buildPlan(fs *flag.FlagSet, opts options) (probe.Plan, error) {
	plan := probe.DefaultPlan()
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return probe.Plan{}, probe.ErrInvalidConfig.Wrap(err, err.Error())
		}
		defer f.Close()
		if plan, err = probe.LoadPlan(f); err != nil {
			return probe.Plan{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			plan.N = opts.n
		case "depth":
			plan.MaxDepth = opts.depth
		case "parallel":
			plan.Parallel = opts.parallel
		}
	})
	return plan, plan.Validate()
}
