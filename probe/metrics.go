package probe

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

var (
	probeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "urldial_probe_duration_seconds",
			Help:    "Duration of probes in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"target", "status"},
	)

	probeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urldial_probe_total",
			Help: "Total number of probes performed",
		},
		[]string{"target", "status"},
	)

	probeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urldial_probe_errors_total",
			Help: "Total number of probe errors",
		},
		[]string{"target", "error_type"},
	)

	targetUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "urldial_target_up",
			Help: "Whether the target accepted the last connection (1 = up, 0 = down)",
		},
		[]string{"target"},
	)

	targetConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "urldial_consecutive_failures",
			Help: "Consecutive failed probes per target",
		},
		[]string{"target"},
	)

	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "urldial_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"target"},
	)
)

// recordProbe records metrics for a probe result.
func recordProbe(result Result) {
	labels := prometheus.Labels{
		"target": result.Target,
		"status": string(result.Status),
	}

	probeDuration.With(labels).Observe(result.Latency.Seconds())
	probeTotal.With(labels).Inc()

	if result.Error != "" {
		probeErrors.With(prometheus.Labels{
			"target":     result.Target,
			"error_type": getErrorType(result.Error),
		}).Inc()
	}

	up := 0.0
	if result.Status == StatusUp || result.Status == StatusDegraded {
		up = 1.0
	}
	targetUp.With(prometheus.Labels{
		"target": result.Target,
	}).Set(up)

	targetConsecutiveFailures.With(prometheus.Labels{
		"target": result.Target,
	}).Set(float64(result.ConsecutiveFailures))
}

// recordCircuitBreakerState records the circuit breaker state.
func recordCircuitBreakerState(target string, state gobreaker.State) {
	var stateValue float64
	switch state {
	case gobreaker.StateClosed:
		stateValue = 0
	case gobreaker.StateHalfOpen:
		stateValue = 1
	case gobreaker.StateOpen:
		stateValue = 2
	}

	circuitBreakerState.With(prometheus.Labels{
		"target": target,
	}).Set(stateValue)
}

// getErrorType categorizes error messages for better metrics.
func getErrorType(errMsg string) string {
	switch {
	case containsAny(errMsg, "timeout", "deadline", "timed out"):
		return "timeout"
	case containsAny(errMsg, "connection refused", "actively refused", "unreachable", "no route"):
		return "connection_refused"
	case containsAny(errMsg, "no such host"):
		return "dns_error"
	case containsAny(errMsg, "circuit breaker", "circuit open", "too many failures"):
		return "circuit_breaker"
	case containsAny(errMsg, "rate limit"):
		return "rate_limited"
	case containsAny(errMsg, "context canceled", "canceled"):
		return "canceled"
	default:
		return "unknown"
	}
}

// containsAny checks if a string contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// ServeMetrics starts a Prometheus metrics HTTP server.
func ServeMetrics(port int) error {
	server := CreateMetricsServer(port)
	return server.ListenAndServe()
}

// CreateMetricsServer creates a configured HTTP server for Prometheus metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
