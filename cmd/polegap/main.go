package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func newRootCommand() *cobra.Command {
	var gopts GlobalOptions

	cmd := &cobra.Command{
		Use:   "polegap",
		Short: "Compare the gap numbers of PoleGap and GASP",
		Long: `
polegap computes the gap numbers (the number of evaluations a user needs) of
the PoleGap, GASP and A3S constructions for secure distributed matrix
multiplication, and compares them over parameter grids.

Every flag can also be set with an environment variable POLEGAP_<FLAG>,
e.g. POLEGAP_K_LIMIT=20.
`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,

		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if err := envOverride(c); err != nil {
				return err
			}
			return gopts.PreRun()
		},
	}

	gopts.AddFlags(cmd.PersistentFlags())

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newCompareCommand(),
		newRatesCommand(),
		newCurveCommand(),
		newGapCommand(),
		newVersionCommand(),
	)

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newRootCommand().ExecuteContext(ctx)
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		logrus.WithError(err).Debug("command failed")
		_, _ = fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
