package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/urldial/urldial/cliout"
	"github.com/urldial/urldial/logutil"
	"github.com/urldial/urldial/probe"
	"github.com/urldial/urldial/urlparse"
)

func newCheckCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "check URL",
		Short: "Check that an http URL's target accepts TCP connections",
		Long: `Check parses the URL, opens one TCP connection to the target, and
reports the outcome with connect latency. Slow targets are reported as
degraded, unreachable ones as down with a remediation hint.`,
		Example: `  urldial check http://example.com/
  urldial check --timeout 5s http://localhost/`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := urlparse.Parse(args[0])
			if err != nil {
				return err
			}

			logutil.Debug("probing target", "target", u.String(), "timeout", timeout)

			prober := probe.New(probe.Config{Timeout: timeout})
			result := prober.Check(cmd.Context(), u)

			if err := cliout.Print(result, func() {
				cliout.CommandHeader("check")
				printResult(result)
			}); err != nil {
				return err
			}

			if result.Status == probe.StatusDown {
				return fmt.Errorf("target %s is down", result.Target)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Second, "Connection timeout")
	return cmd
}

// printResult renders a single probe outcome for human-readable output.
func printResult(result probe.Result) {
	latency := result.Latency.Round(time.Millisecond)

	switch result.Status {
	case probe.StatusUp:
		cliout.Success("%s is up (%s)", cliout.URL(result.Target), latency)
	case probe.StatusDegraded:
		cliout.Warning("%s is degraded (%s)", cliout.URL(result.Target), latency)
	case probe.StatusDown:
		cliout.Error("%s is down", cliout.URL(result.Target))
		if result.Error != "" {
			cliout.Item("%s", result.Error)
		}
		if result.Suggestion != "" {
			cliout.ItemInfo("%s", result.Suggestion)
		}
	default:
		cliout.Info("%s status is unknown", cliout.URL(result.Target))
	}
}
