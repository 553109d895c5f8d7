package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"
	"github.com/urldial/urldial/dial"
	"github.com/urldial/urldial/urlparse"
	"golang.org/x/time/rate"
)

var (
	// metricsEnabled controls whether Prometheus metrics are recorded.
	metricsEnabled atomic.Bool
)

// Prober performs individual probes with circuit breaker and rate limiting.
type Prober struct {
	timeout           time.Duration
	interval          time.Duration
	degradedThreshold time.Duration
	breakers          map[string]*gobreaker.CircuitBreaker
	limiters          map[string]*rate.Limiter
	failures          map[string]int
	lastSuccess       map[string]time.Time
	lastStatus        map[string]Status
	mu                sync.RWMutex
	enableBreaker     bool
	breakerFailures   int
	breakerTimeout    time.Duration
	rateLimit         int
}

// New creates a new Prober from the given config.
func New(config Config) *Prober {
	metricsEnabled.Store(config.EnableMetrics)

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}
	interval := config.Interval
	if interval == 0 {
		interval = defaultInterval
	}
	threshold := config.DegradedThreshold
	if threshold == 0 {
		threshold = defaultDegradedThreshold
	}

	return &Prober{
		timeout:           timeout,
		interval:          interval,
		degradedThreshold: threshold,
		breakers:          make(map[string]*gobreaker.CircuitBreaker),
		limiters:          make(map[string]*rate.Limiter),
		failures:          make(map[string]int),
		lastSuccess:       make(map[string]time.Time),
		lastStatus:        make(map[string]Status),
		enableBreaker:     config.EnableCircuitBreaker,
		breakerFailures:   config.CircuitBreakerFailures,
		breakerTimeout:    config.CircuitBreakerTimeout,
		rateLimit:         config.RateLimit,
	}
}

// getOrCreateCircuitBreaker gets or creates a circuit breaker for a target.
func (p *Prober) getOrCreateCircuitBreaker(target string) *gobreaker.CircuitBreaker {
	if !p.enableBreaker {
		return nil
	}

	p.mu.RLock()
	breaker, exists := p.breakers[target]
	p.mu.RUnlock()

	if exists {
		return breaker
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if breaker, exists := p.breakers[target]; exists {
		return breaker
	}

	settings := gobreaker.Settings{
		Name:        target,
		MaxRequests: 3,
		Interval:    p.breakerTimeout,
		Timeout:     p.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if p.breakerFailures < 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(p.breakerFailures) && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if metricsEnabled.Load() {
				recordCircuitBreakerState(name, to)
			}
		},
	}

	breaker = gobreaker.NewCircuitBreaker(settings)
	p.breakers[target] = breaker
	return breaker
}

// getOrCreateRateLimiter gets or creates a rate limiter for a target.
func (p *Prober) getOrCreateRateLimiter(target string) *rate.Limiter {
	if p.rateLimit <= 0 {
		return nil
	}

	p.mu.RLock()
	limiter, exists := p.limiters[target]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists := p.limiters[target]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.rateLimit), p.rateLimit*2)
	p.limiters[target] = limiter

	return limiter
}

// Check probes a single URL and reports its reachability.
func (p *Prober) Check(ctx context.Context, u urlparse.URL) Result {
	target := u.String()

	// Apply rate limiting if configured
	limiter := p.getOrCreateRateLimiter(target)
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return Result{
				Target:    target,
				Host:      u.Host,
				Port:      u.Port,
				Timestamp: time.Now(),
				Status:    StatusDown,
				Error:     "rate limit exceeded",
			}
		}
	}

	breaker := p.getOrCreateCircuitBreaker(target)

	var result Result

	if breaker != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					result = Result{
						Target:    target,
						Host:      u.Host,
						Port:      u.Port,
						Timestamp: time.Now(),
						Status:    StatusUnknown,
						Error:     fmt.Sprintf("internal error: panic during probe: %v", r),
					}
				}
			}()

			output, err := breaker.Execute(func() (interface{}, error) {
				res := p.performProbe(ctx, u)
				if res.Status == StatusDown {
					return res, fmt.Errorf("probe failed: %s", res.Error)
				}
				return res, nil
			})

			if err != nil {
				if errors.Is(err, gobreaker.ErrOpenState) {
					result = Result{
						Target:    target,
						Host:      u.Host,
						Port:      u.Port,
						Timestamp: time.Now(),
						Status:    StatusDown,
						Error:     "circuit breaker open - target unavailable",
					}
				} else if typedResult, ok := output.(Result); ok {
					result = typedResult
				} else {
					result = Result{
						Target:    target,
						Host:      u.Host,
						Port:      u.Port,
						Timestamp: time.Now(),
						Status:    StatusDown,
						Error:     err.Error(),
					}
				}
			} else {
				if typedResult, ok := output.(Result); ok {
					result = typedResult
				} else {
					result = Result{
						Target:    target,
						Host:      u.Host,
						Port:      u.Port,
						Timestamp: time.Now(),
						Status:    StatusUnknown,
						Error:     "internal error: unexpected probe result type",
					}
				}
			}
		}()
	} else {
		result = p.performProbe(ctx, u)
	}

	p.track(&result)

	if metricsEnabled.Load() {
		recordProbe(result)
	}

	return result
}

// performProbe executes the actual connection attempt without circuit breaker.
func (p *Prober) performProbe(ctx context.Context, u urlparse.URL) Result {
	result := Result{
		Target:    u.String(),
		Host:      u.Host,
		Port:      u.Port,
		Timestamp: time.Now(),
	}

	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	conn, err := dial.DialContext(dialCtx, u)
	result.Latency = time.Since(start)

	if err != nil {
		result.Status = StatusDown
		result.Error = err.Error()
		result.Suggestion = SuggestDialAction(err, u.Port)
		return result
	}

	_ = conn.Close()

	if result.Latency >= p.degradedThreshold {
		result.Status = StatusDegraded
	} else {
		result.Status = StatusUp
	}

	return result
}

// track updates per-target failure counters and flags status transitions.
func (p *Prober) track(result *Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	target := result.Target

	switch result.Status {
	case StatusDown:
		p.failures[target]++
		result.ConsecutiveFailures = p.failures[target]
		if lastSuccess, exists := p.lastSuccess[target]; exists {
			result.LastSuccessTime = &lastSuccess
		}
	case StatusUp, StatusDegraded:
		p.failures[target] = 0
		result.ConsecutiveFailures = 0
		now := time.Now()
		p.lastSuccess[target] = now
		result.LastSuccessTime = &now
	default:
		if count, exists := p.failures[target]; exists {
			result.ConsecutiveFailures = count
		}
		if lastSuccess, exists := p.lastSuccess[target]; exists {
			result.LastSuccessTime = &lastSuccess
		}
	}

	if prev, exists := p.lastStatus[target]; exists && prev != result.Status {
		result.StatusChanged = true
	}
	p.lastStatus[target] = result.Status
}

// CheckAll probes every target concurrently and aggregates a report.
func (p *Prober) CheckAll(ctx context.Context, targets []urlparse.URL) Report {
	results := make([]Result, len(targets))

	sem := make(chan struct{}, maxConcurrentProbes)
	var wg sync.WaitGroup

	for i, u := range targets {
		wg.Add(1)
		go func(i int, u urlparse.URL) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = p.Check(ctx, u)
		}(i, u)
	}
	wg.Wait()

	return NewReport(results)
}

// Watch probes all targets on the configured interval until the context is
// cancelled, sending every individual result on the returned channel. The
// first round runs immediately; the channel is closed when the context ends.
func (p *Prober) Watch(ctx context.Context, targets []urlparse.URL) <-chan Result {
	results := make(chan Result)

	go func() {
		defer close(results)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			for _, u := range targets {
				if ctx.Err() != nil {
					return
				}
				select {
				case results <- p.Check(ctx, u):
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return results
}

// SuggestDialAction provides actionable suggestions for TCP connection errors.
func SuggestDialAction(err error, port uint16) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "actively refused") {
		return fmt.Sprintf("Port %d connection refused. Verify the server is running and the port is correct.", port)
	}
	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
		return fmt.Sprintf("Port %d connection timeout. Check network connectivity and firewall rules.", port)
	}
	if strings.Contains(errMsg, "no such host") {
		return "Host not found. Check the hostname for typos."
	}
	if strings.Contains(errMsg, "no route to host") {
		return "Network unreachable. Check network configuration."
	}
	return fmt.Sprintf("Port %d connection failed. Verify the server is reachable.", port)
}
