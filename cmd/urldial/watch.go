package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/urldial/urldial/cliout"
	"github.com/urldial/urldial/logutil"
	"github.com/urldial/urldial/notify"
	"github.com/urldial/urldial/probe"
	"github.com/urldial/urldial/urlparse"
)

func newWatchCommand() *cobra.Command {
	var (
		interval          time.Duration
		timeout           time.Duration
		degradedThreshold time.Duration
		profileName       string
		enableBreaker     bool
		breakerFailures   int
		breakerTimeout    time.Duration
		rateLimit         int
		enableMetrics     bool
		metricsPort       int
		enableNotify      bool
		count             int
		initProfiles      bool
	)

	cmd := &cobra.Command{
		Use:   "watch URL...",
		Short: "Repeatedly probe http URLs and report status transitions",
		Long: `Watch probes every target on a fixed interval until interrupted,
printing one line per probe and a summary at the end.

Probe behavior (interval, timeouts, circuit breaker, rate limit, metrics)
can be loaded from a named profile in .urldial/profiles.yaml; explicit
flags override profile values.`,
		Example: `  urldial watch http://localhost/
  urldial watch --interval 10s --notify http://api.local/ http://cache.local/
  urldial watch --profile production http://example.com/
  urldial watch --init-profiles`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initProfiles {
				return writeSampleProfiles()
			}
			if len(args) == 0 {
				return usageError{errors.New("requires at least one URL argument")}
			}

			config := probe.Config{
				Timeout:                timeout,
				Interval:               interval,
				DegradedThreshold:      degradedThreshold,
				EnableCircuitBreaker:   enableBreaker,
				CircuitBreakerFailures: breakerFailures,
				CircuitBreakerTimeout:  breakerTimeout,
				RateLimit:              rateLimit,
				EnableMetrics:          enableMetrics,
				MetricsPort:            metricsPort,
			}

			if profileName != "" {
				loaded, err := loadProfileConfig(profileName)
				if err != nil {
					return err
				}
				config = loaded

				// Visit covers only flags set on the command line, so
				// explicit flags override profile settings.
				cmd.Flags().Visit(func(f *pflag.Flag) {
					switch f.Name {
					case "interval":
						config.Interval = interval
					case "timeout":
						config.Timeout = timeout
					case "degraded-threshold":
						config.DegradedThreshold = degradedThreshold
					case "breaker":
						config.EnableCircuitBreaker = enableBreaker
					case "breaker-failures":
						config.CircuitBreakerFailures = breakerFailures
					case "breaker-timeout":
						config.CircuitBreakerTimeout = breakerTimeout
					case "rate-limit":
						config.RateLimit = rateLimit
					case "metrics":
						config.EnableMetrics = enableMetrics
					case "metrics-port":
						config.MetricsPort = metricsPort
					}
				})
			}

			targets := make([]urlparse.URL, 0, len(args))
			for _, raw := range args {
				u, err := urlparse.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid target %q: %w", raw, err)
				}
				targets = append(targets, u)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var notifier notify.Notifier
			if enableNotify {
				n, err := notify.New(notify.DefaultConfig())
				if err != nil {
					logutil.Warn("desktop notifications unavailable", "error", err)
				} else {
					notifier = n
					defer func() { _ = notifier.Close() }()
				}
			}

			if config.EnableMetrics {
				go func() {
					if err := probe.ServeMetrics(config.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logutil.Error("metrics server failed", "error", err)
					}
				}()
			}

			prober := probe.New(config)

			cliout.PrintDefault(func() {
				cliout.CommandHeader("watch")
				cliout.Phase(fmt.Sprintf("Watching %d target(s) every %s", len(targets), config.Interval))
				if config.EnableMetrics {
					cliout.Info("Serving metrics on http://localhost:%d/metrics", config.MetricsPort)
				}
				cliout.Hint("Press Ctrl+C to stop")
				cliout.Newline()
			})

			seen := 0
			last := make(map[string]probe.Result)

			for result := range prober.Watch(ctx, targets) {
				printWatchResult(result)

				if notifier != nil && result.StatusChanged {
					sendTransitionNotification(ctx, notifier, result)
				}

				last[result.Target] = result
				seen++
				if count > 0 && seen >= count*len(targets) {
					stop()
				}
			}

			finals := make([]probe.Result, 0, len(targets))
			for _, u := range targets {
				if r, ok := last[u.String()]; ok {
					finals = append(finals, r)
				}
			}
			report := probe.NewReport(finals)

			return cliout.Print(report, func() {
				printWatchSummary(report)
			})
		},
	}

	flags := cmd.Flags()
	flags.DurationVarP(&interval, "interval", "i", 5*time.Second, "Time between probe rounds")
	flags.DurationVarP(&timeout, "timeout", "t", 2*time.Second, "Connection timeout per probe")
	flags.DurationVar(&degradedThreshold, "degraded-threshold", time.Second, "Connect latency above which a target counts as degraded")
	flags.StringVarP(&profileName, "profile", "p", "", "Probe profile to load from .urldial/profiles.yaml")
	flags.BoolVar(&enableBreaker, "breaker", false, "Enable per-target circuit breakers")
	flags.IntVar(&breakerFailures, "breaker-failures", 5, "Failures before a circuit opens")
	flags.DurationVar(&breakerTimeout, "breaker-timeout", 60*time.Second, "Time before an open circuit retries")
	flags.IntVar(&rateLimit, "rate-limit", 0, "Max probes per second per target (0 = unlimited)")
	flags.BoolVar(&enableMetrics, "metrics", false, "Serve Prometheus metrics while watching")
	flags.IntVar(&metricsPort, "metrics-port", 9090, "Prometheus metrics port")
	flags.BoolVar(&enableNotify, "notify", false, "Send a desktop notification on status transitions")
	flags.IntVarP(&count, "count", "c", 0, "Stop after this many probe rounds (0 = until interrupted)")
	flags.BoolVar(&initProfiles, "init-profiles", false, "Write a sample .urldial/profiles.yaml and exit")

	return cmd
}

func writeSampleProfiles() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := probe.SaveSampleProfiles(dir); err != nil {
		return err
	}
	cliout.Success("Wrote sample profiles to %s", cliout.Emphasize(".urldial/profiles.yaml"))
	return nil
}

func loadProfileConfig(name string) (probe.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return probe.Config{}, err
	}
	profiles, err := probe.LoadProfiles(dir)
	if err != nil {
		return probe.Config{}, err
	}
	profile, err := profiles.GetProfile(name)
	if err != nil {
		return probe.Config{}, err
	}
	logutil.Debug("loaded probe profile", "profile", name)
	return profile.Config(), nil
}

// printWatchResult renders one probe outcome as a single watch line.
func printWatchResult(result probe.Result) {
	if cliout.IsJSON() {
		_ = cliout.PrintJSON(result)
		return
	}

	ts := result.Timestamp.Format("15:04:05")
	badge := cliout.Status(string(result.Status))

	switch result.Status {
	case probe.StatusDown:
		detail := result.Error
		if result.Suggestion != "" {
			detail += " " + cliout.Muted("%s", result.Suggestion)
		}
		cliout.Plain("%s  %-8s  %s  %s", cliout.Muted("%s", ts), badge, result.Target, detail)
	default:
		cliout.Plain("%s  %-8s  %s  %v", cliout.Muted("%s", ts), badge, result.Target, result.Latency.Round(time.Millisecond))
	}
}

// printWatchSummary renders the final per-target table and overall status.
func printWatchSummary(report probe.Report) {
	if len(report.Targets) == 0 {
		return
	}

	cliout.Newline()
	cliout.Section(cliout.IconChart, "Watch summary")

	rows := make([]cliout.TableRow, 0, len(report.Targets))
	for _, r := range report.Targets {
		row := cliout.TableRow{
			"Target":  r.Target,
			"Status":  string(r.Status),
			"Latency": r.Latency.Round(time.Millisecond).String(),
		}
		if r.Status == probe.StatusDown {
			row["Latency"] = "-"
		}
		rows = append(rows, row)
	}
	cliout.Table([]string{"Target", "Status", "Latency"}, rows)

	cliout.Newline()
	cliout.Plain("Overall: %s (%d up, %d degraded, %d down)",
		cliout.Status(string(report.Summary.Overall)),
		report.Summary.Up, report.Summary.Degraded, report.Summary.Down)
}

// sendTransitionNotification maps a status transition to a desktop
// notification severity and sends it.
func sendTransitionNotification(ctx context.Context, notifier notify.Notifier, result probe.Result) {
	var severity, message string

	switch result.Status {
	case probe.StatusDown:
		severity = "critical"
		message = "Target went down"
		if result.Error != "" {
			message = result.Error
		}
	case probe.StatusDegraded:
		severity = "warning"
		message = fmt.Sprintf("Target is degraded (%s)", result.Latency.Round(time.Millisecond))
	default:
		severity = "info"
		message = "Target recovered"
	}

	notification := notify.Notification{
		Title:     result.Target,
		Message:   message,
		Severity:  severity,
		Target:    result.Target,
		Timestamp: result.Timestamp,
	}
	if err := notifier.Send(ctx, notification); err != nil {
		logutil.Warn("failed to send notification", "target", result.Target, "error", err)
	}
}
