package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix is prepended to the upper-cased flag name to form the
// environment variable overriding it.
const envPrefix = "POLEGAP_"

// GlobalOptions hold options shared by all commands.
type GlobalOptions struct {
	Verbose   bool
	LogFormat string
}

// AddFlags adds the options to the flag set.
func (opts *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")
	f.StringVar(&opts.LogFormat, "log-format", "text", "log `format`: text or json")
}

// PreRun configures the logger.
func (opts *GlobalOptions) PreRun() error {
	logrus.SetOutput(os.Stderr)

	switch strings.ToLower(opts.LogFormat) {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", opts.LogFormat)
	}

	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	return nil
}

// envName returns the environment variable overriding the flag name.
func envName(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// envOverride sets every flag not given on the command line
// from its environment variable, if present.
func envOverride(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}

		name := envName(f.Name)
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			return
		}

		if setErr := cmd.Flags().Set(f.Name, value); setErr != nil {
			err = errors.Wrapf(setErr, "environment variable %s", name)
			return
		}

		logrus.WithFields(logrus.Fields{
			"env":   name,
			"flag":  f.Name,
			"value": value,
		}).Debug("environment variable overrides flag")
	})
	return err
}
