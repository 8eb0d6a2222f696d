package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sp301415/polegap/compare"
	"github.com/sp301415/polegap/gap"
	"github.com/spf13/cobra"
)

func newGapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gap K L X",
		Short: "Print the gap numbers of every construction for one triple",
		Long: `
The "gap" command prints the gap number of A3S, GASP (small r, big r, the
legacy min of both, and the best r) and PoleGap for the given K, L and X.
PoleGap needs at least one of K and L to be even.
`,
		Args:              cobra.ExactArgs(3),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			K, L, X, err := parseTriple(args)
			if err != nil {
				return err
			}
			return runGap(K, L, X, cmd.OutOrStdout())
		},
	}
}

func newCurveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curve K L X",
		Short: "Print the GASP gap number for every r",
		Long: `
The "curve" command prints the gap number of GASP with the given K, L and X
for every r in [1, min(K, X)], one "r gap" pair per line.
`,
		Args:              cobra.ExactArgs(3),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			K, L, X, err := parseTriple(args)
			if err != nil {
				return err
			}
			return runCurve(K, L, X, cmd.OutOrStdout())
		},
	}
}

// parseTriple parses K, L, X from args.
func parseTriple(args []string) (K, L, X int, err error) {
	v := make([]int, 3)
	for i, name := range []string{"K", "L", "X"} {
		v[i], err = strconv.Atoi(args[i])
		if err != nil {
			return 0, 0, 0, errors.Wrapf(err, "invalid %s", name)
		}
		if v[i] < 1 {
			return 0, 0, 0, errors.Wrapf(gap.ErrInvalidParameters, "%s=%d", name, v[i])
		}
	}
	return v[0], v[1], v[2], nil
}

func runGap(K, L, X int, out io.Writer) error {
	ev := gap.NewEvaluator(nil)

	for _, s := range compare.Schemes {
		g, err := s.Gap(ev, K, L, X)
		if errors.Is(err, gap.ErrBothOdd) {
			if _, err := fmt.Fprintf(out, "%-10v -\n", s); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%-10v %d\n", s, g); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "%-10v %d\n", "GASP_old", ev.Old(K, L, X))
	return err
}

func runCurve(K, L, X int, out io.Writer) error {
	ev := gap.NewEvaluator(nil)
	for i, v := range ev.Curve(K, L, X) {
		if _, err := fmt.Fprintf(out, "%d %d\n", i+1, v); err != nil {
			return err
		}
	}
	return nil
}
