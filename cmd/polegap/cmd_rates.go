package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sp301415/polegap/compare"
	"github.com/sp301415/polegap/gap"
	"github.com/sp301415/polegap/num"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRatesCommand() *cobra.Command {
	var opts RatesOptions

	cmd := &cobra.Command{
		Use:   "rates [flags]",
		Short: "Print the rate curves of all constructions",
		Long: `
The "rates" command prints, as CSV, the rate K*L/gap of A3S, GASP (with small
r, big r and the best r) and PoleGap in two series: for fixed K = L as a
function of X, and for fixed X as a function of K = L. After each series it
prints the largest relative increase in rate of PoleGap over GASP.
`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRates(opts, cmd.OutOrStdout())
		},
	}

	opts.AddFlags(cmd.Flags())
	return cmd
}

// RatesOptions bundles all options for the rates command.
type RatesOptions struct {
	K      int
	XMax   int
	FixedX int
	KMax   int
}

// AddFlags adds the options to the flag set.
func (opts *RatesOptions) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&opts.K, "k", compare.DefaultRateK, "`K` = L of the first series")
	f.IntVar(&opts.XMax, "x-max", num.MaxSlice(compare.DefaultRateXs), "largest `X` of the first series")
	f.IntVar(&opts.FixedX, "fixed-x", compare.DefaultRateX, "`X` of the second series")
	f.IntVar(&opts.KMax, "k-max", num.MaxSlice(compare.DefaultRateKs), "largest even `K` = L of the second series")
}

func runRates(opts RatesOptions, out io.Writer) error {
	if opts.K < 1 || opts.XMax < 1 || opts.FixedX < 1 || opts.KMax < 2 {
		return errors.New("all rate parameters must be positive and k-max at least 2")
	}

	ev := gap.NewEvaluator(nil)

	byX, err := compare.RatesByX(ev, opts.K, opts.K, num.Range(1, opts.XMax+1, 1))
	if err != nil {
		return err
	}

	byK, err := compare.RatesByK(ev, opts.FixedX, num.Range(2, opts.KMax+1, 2))
	if err != nil {
		return err
	}

	for _, rs := range []compare.RateSeries{byX, byK} {
		if err := rs.WriteCSV(out); err != nil {
			return err
		}

		summary, err := rs.Summarize()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "Largest increase in rate: %v\n", summary.LargestIncrease); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "Mean rate ratio: %v, median rate ratio: %v\n\n", summary.MeanRatio, summary.MedianRatio); err != nil {
			return err
		}
	}

	return nil
}
