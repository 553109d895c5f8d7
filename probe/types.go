// Package probe provides connectivity monitoring for http URLs.
package probe

import (
	"time"
)

const (
	// maxConcurrentProbes limits parallel probe execution in CheckAll
	maxConcurrentProbes = 10

	// defaultDialTimeout is the timeout applied to each connection attempt
	defaultDialTimeout = 2 * time.Second

	// defaultInterval is the delay between probe rounds in Watch
	defaultInterval = 5 * time.Second

	// defaultDegradedThreshold is the connect latency above which a reachable
	// target is reported as degraded rather than up
	defaultDegradedThreshold = 1 * time.Second
)

// Status represents the reachability of a probed target.
type Status string

const (
	StatusUp       Status = "up"
	StatusDegraded Status = "degraded"
	StatusDown     Status = "down"
	StatusUnknown  Status = "unknown"
)

// Result represents the outcome of a single probe.
type Result struct {
	Target              string        `json:"target"`
	Host                string        `json:"host"`
	Port                uint16        `json:"port"`
	Status              Status        `json:"status"`
	Latency             time.Duration `json:"latency"`
	Error               string        `json:"error,omitempty"`
	Suggestion          string        `json:"suggestion,omitempty"`
	ConsecutiveFailures int           `json:"consecutiveFailures,omitempty"`
	LastSuccessTime     *time.Time    `json:"lastSuccessTime,omitempty"`
	StatusChanged       bool          `json:"statusChanged,omitempty"`
	Timestamp           time.Time     `json:"timestamp"`
}

// Report contains the results of one probe round over a set of targets.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Targets   []Result  `json:"targets"`
	Summary   Summary   `json:"summary"`
}

// Summary provides overall reachability statistics.
type Summary struct {
	Total    int    `json:"total"`
	Up       int    `json:"up"`
	Degraded int    `json:"degraded"`
	Down     int    `json:"down"`
	Unknown  int    `json:"unknown"`
	Overall  Status `json:"overall"`
}

// NewReport aggregates results into a report with summary statistics.
func NewReport(results []Result) Report {
	return Report{
		Timestamp: time.Now(),
		Targets:   results,
		Summary:   calculateSummary(results),
	}
}

// Config holds configuration for a Prober.
type Config struct {
	Timeout                time.Duration
	Interval               time.Duration
	DegradedThreshold      time.Duration
	EnableCircuitBreaker   bool
	CircuitBreakerFailures int
	CircuitBreakerTimeout  time.Duration
	RateLimit              int // Max probes per second per target (0 = unlimited)
	EnableMetrics          bool
	MetricsPort            int
}

// calculateSummary calculates reachability statistics from a slice of results.
func calculateSummary(results []Result) Summary {
	summary := Summary{
		Total: len(results),
	}

	for _, result := range results {
		switch result.Status {
		case StatusUp:
			summary.Up++
		case StatusDegraded:
			summary.Degraded++
		case StatusDown:
			summary.Down++
		default:
			summary.Unknown++
		}
	}

	if summary.Down > 0 {
		summary.Overall = StatusDown
	} else if summary.Degraded > 0 {
		summary.Overall = StatusDegraded
	} else if summary.Up > 0 {
		summary.Overall = StatusUp
	} else {
		summary.Overall = StatusUnknown
	}

	return summary
}
