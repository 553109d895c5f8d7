package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/urldial/urldial/browser"
	"github.com/urldial/urldial/cliout"
	"github.com/urldial/urldial/urlparse"
)

func newOpenCommand() *cobra.Command {
	var (
		target        string
		launchTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "open URL",
		Short: "Open an http URL in the system browser",
		Long: `Open parses the URL and launches it in the system browser. The URL
goes through the same validation as parse, so malformed input fails
before any browser starts.`,
		Example: `  urldial open http://localhost/
  urldial open --browser none http://example.com/`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !browser.IsValid(target) {
				return usageError{fmt.Errorf("invalid browser target %q (valid options: %s)", target, browser.FormatValidTargets())}
			}

			u, err := urlparse.Parse(args[0])
			if err != nil {
				return err
			}

			resolved := browser.ResolveTarget(browser.Target(target))
			if resolved == browser.TargetNone {
				cliout.Info("Browser launch disabled, target resolves to %s", cliout.URL(u.String()))
				return nil
			}

			if err := browser.Launch(browser.LaunchOptions{
				URL:     u.String(),
				Target:  resolved,
				Timeout: launchTimeout,
			}); err != nil {
				return err
			}

			cliout.Success("Opening %s in %s", cliout.URL(u.String()), browser.GetTargetDisplayName(resolved))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "browser", "b", string(browser.TargetDefault), "Browser target (default, system, none)")
	cmd.Flags().DurationVar(&launchTimeout, "launch-timeout", 5*time.Second, "Timeout for the browser launch command")
	return cmd
}
