package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `
The "version" command prints the version of this software and the Go
toolchain it was compiled with.
`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "polegap %s compiled with %v on %v/%v\n",
				version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
