package main

import (
	"github.com/spf13/cobra"

	"github.com/urldial/urldial/cliout"
	"github.com/urldial/urldial/logutil"
	"github.com/urldial/urldial/version"
)

// usageError marks errors that should exit with code 2 instead of 1.
type usageError struct {
	error
}

// exactArgs wraps cobra.ExactArgs so violations surface as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func newRootCommand(info *version.Info) *cobra.Command {
	var (
		debug        bool
		logJSON      bool
		outputFormat string
		noColor      bool
	)

	rootCmd := &cobra.Command{
		Use:   "urldial",
		Short: "Parse http URLs and check that their targets accept connections",
		Long: `urldial parses absolute http URLs into their structural parts and opens
TCP connections to the parsed targets to verify reachability.

Only plain http URLs are supported and every connection goes to port 80;
query strings, fragments, and port numbers in the URL are out of scope.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, logJSON)
			if noColor {
				cliout.NoColor()
			}
			if err := cliout.SetFormat(outputFormat); err != nil {
				return usageError{err}
			}
			return nil
		},
	}

	rootCmd.Version = info.Version
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	pf.StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json)")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newOpenCommand())
	rootCmd.AddCommand(newMCPCommand(info))
	rootCmd.AddCommand(version.NewCommand(info, &outputFormat))

	return rootCmd
}
