package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sp301415/polegap/compare"
	"github.com/sp301415/polegap/gap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCompareCommand() *cobra.Command {
	var opts CompareOptions

	cmd := &cobra.Command{
		Use:   "compare [flags]",
		Short: "Count the triples where PoleGap beats GASP",
		Long: `
The "compare" command evaluates PoleGap and GASP for every even K in
[2, k-limit], every L in [1, K] and every X in [1, x-limit], and prints how
often PoleGap has a smaller, equal or larger gap.

EXIT STATUS
===========

Exit status is 0 if the sweep completed, and 1 if it was aborted.
`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	opts.AddFlags(cmd.Flags())
	return cmd
}

// CompareOptions bundles all options for the compare command.
type CompareOptions struct {
	KLimit    int
	XLimit    int
	Workers   int
	CacheSize int
}

// AddFlags adds the options to the flag set.
func (opts *CompareOptions) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&opts.KLimit, "k-limit", compare.DefaultParameters.KLimit, "largest `K` of the sweep")
	f.IntVar(&opts.XLimit, "x-limit", compare.DefaultParameters.XLimit, "largest `X` of the sweep")
	f.IntVar(&opts.Workers, "workers", 1, "number of parallel `workers`, 0 for one per CPU")
	f.IntVar(&opts.CacheSize, "cache-size", 0, "bound the GASP cache to `n` entries, 0 for unbounded")
}

func (opts CompareOptions) literal() compare.ParametersLiteral {
	return compare.ParametersLiteral{
		KLimit:  opts.KLimit,
		XLimit:  opts.XLimit,
		Workers: opts.Workers,
	}
}

// validateLiteral reports the parameters that Compile would panic on.
func validateLiteral(lit compare.ParametersLiteral) error {
	switch {
	case lit.KLimit < 2:
		return errors.Errorf("k-limit must be at least 2, got %d", lit.KLimit)
	case lit.XLimit < 1:
		return errors.Errorf("x-limit must be at least 1, got %d", lit.XLimit)
	case lit.Workers < 0:
		return errors.Errorf("workers must be non-negative, got %d", lit.Workers)
	}
	return nil
}

func runCompare(ctx context.Context, opts CompareOptions, out io.Writer) error {
	lit := opts.literal()
	if err := validateLiteral(lit); err != nil {
		return err
	}
	params := lit.Compile()

	var cache gap.Cache = gap.NewMapCache()
	if opts.CacheSize > 0 {
		cache = gap.NewLRUCache(opts.CacheSize)
	}

	logrus.WithFields(logrus.Fields{
		"kLimit":  params.KLimit(),
		"xLimit":  params.XLimit(),
		"workers": params.Workers(),
		"triples": params.Triples(),
	}).Info("starting sweep")

	s := compare.NewSweeper(params, cache)

	var t compare.Tally
	var err error
	if params.Workers() > 1 {
		t, err = s.SweepParallel(ctx)
	} else {
		t, err = s.Sweep(ctx)
	}
	if err != nil {
		return err
	}

	logrus.WithField("cached", cache.Len()).Debug("sweep done")

	return compare.Report(out, t)
}
