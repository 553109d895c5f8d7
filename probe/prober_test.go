package probe

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/urldial/urldial/urlparse"
	"golang.org/x/time/rate"
)

// testListenerURL starts a loopback listener and returns a URL pointing at it.
func testListenerURL(t *testing.T) (urlparse.URL, net.Listener) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to create listener: %v", err)
	}
	tcpAddr, _ := listener.Addr().(*net.TCPAddr)

	u := urlparse.URL{
		Scheme: "http",
		Host:   "127.0.0.1",
		Path:   "/",
		Port:   uint16(tcpAddr.Port),
	}
	return u, listener
}

// deadTargetURL returns a URL pointing at a port that nothing listens on.
func deadTargetURL(t *testing.T) urlparse.URL {
	t.Helper()

	u, listener := testListenerURL(t)
	_ = listener.Close()
	return u
}

func TestNew_Defaults(t *testing.T) {
	p := New(Config{})

	if p.timeout != defaultDialTimeout {
		t.Errorf("timeout = %v, want %v", p.timeout, defaultDialTimeout)
	}
	if p.interval != defaultInterval {
		t.Errorf("interval = %v, want %v", p.interval, defaultInterval)
	}
	if p.degradedThreshold != defaultDegradedThreshold {
		t.Errorf("degradedThreshold = %v, want %v", p.degradedThreshold, defaultDegradedThreshold)
	}
}

func TestGetOrCreateCircuitBreaker(t *testing.T) {
	p := &Prober{
		breakers:        make(map[string]*gobreaker.CircuitBreaker),
		enableBreaker:   true,
		breakerFailures: 3,
		breakerTimeout:  10 * time.Second,
	}

	breaker1 := p.getOrCreateCircuitBreaker("http://a/")
	if breaker1 == nil {
		t.Fatal("Expected non-nil circuit breaker")
	}

	breaker2 := p.getOrCreateCircuitBreaker("http://a/")
	if breaker1 != breaker2 {
		t.Error("Expected same circuit breaker instance")
	}

	breaker3 := p.getOrCreateCircuitBreaker("http://b/")
	if breaker1 == breaker3 {
		t.Error("Expected different circuit breaker for different target")
	}
}

func TestGetOrCreateCircuitBreaker_Disabled(t *testing.T) {
	p := &Prober{
		breakers:      make(map[string]*gobreaker.CircuitBreaker),
		enableBreaker: false,
	}

	breaker := p.getOrCreateCircuitBreaker("http://a/")
	if breaker != nil {
		t.Error("Expected nil circuit breaker when disabled")
	}
}

func TestGetOrCreateRateLimiter(t *testing.T) {
	p := &Prober{
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: 5,
	}

	limiter1 := p.getOrCreateRateLimiter("http://a/")
	if limiter1 == nil {
		t.Fatal("Expected non-nil rate limiter")
	}

	limiter2 := p.getOrCreateRateLimiter("http://a/")
	if limiter1 != limiter2 {
		t.Error("Expected same rate limiter instance")
	}

	limiter3 := p.getOrCreateRateLimiter("http://b/")
	if limiter1 == limiter3 {
		t.Error("Expected different rate limiter for different target")
	}
}

func TestGetOrCreateRateLimiter_Disabled(t *testing.T) {
	p := &Prober{
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: 0,
	}

	limiter := p.getOrCreateRateLimiter("http://a/")
	if limiter != nil {
		t.Error("Expected nil rate limiter when disabled (rateLimit <= 0)")
	}
}

func TestCheck_Up(t *testing.T) {
	u, listener := testListenerURL(t)
	defer func() { _ = listener.Close() }()

	p := New(Config{Timeout: 2 * time.Second})
	result := p.Check(context.Background(), u)

	if result.Status != StatusUp {
		t.Errorf("Status = %v, want %v (error: %s)", result.Status, StatusUp, result.Error)
	}
	if result.Target != u.String() {
		t.Errorf("Target = %s, want %s", result.Target, u.String())
	}
	if result.Host != u.Host {
		t.Errorf("Host = %s, want %s", result.Host, u.Host)
	}
	if result.Port != u.Port {
		t.Errorf("Port = %d, want %d", result.Port, u.Port)
	}
	if result.Latency <= 0 {
		t.Error("Expected positive latency")
	}
	if result.Error != "" {
		t.Errorf("Error = %q, want empty", result.Error)
	}
	if result.ConsecutiveFailures != 0 {
		t.Errorf("ConsecutiveFailures = %d, want 0", result.ConsecutiveFailures)
	}
	if result.LastSuccessTime == nil {
		t.Error("Expected last success time to be set")
	}
}

func TestCheck_Down(t *testing.T) {
	u := deadTargetURL(t)

	p := New(Config{Timeout: 2 * time.Second})
	result := p.Check(context.Background(), u)

	if result.Status != StatusDown {
		t.Errorf("Status = %v, want %v", result.Status, StatusDown)
	}
	if result.Error == "" {
		t.Error("Expected error to be populated for dead target")
	}
	if result.Suggestion == "" {
		t.Error("Expected suggestion for dead target")
	}
	if result.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1", result.ConsecutiveFailures)
	}
}

func TestCheck_RateLimitExceeded(t *testing.T) {
	u, listener := testListenerURL(t)
	defer func() { _ = listener.Close() }()

	p := New(Config{Timeout: 2 * time.Second, RateLimit: 1})

	// Exhaust the burst allowance
	_ = p.Check(context.Background(), u)
	_ = p.Check(context.Background(), u)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result := p.Check(ctx, u)

	if result.Status != StatusDown {
		t.Errorf("Status = %v, want %v", result.Status, StatusDown)
	}
	if result.Error != "rate limit exceeded" {
		t.Errorf("Error = %q, want %q", result.Error, "rate limit exceeded")
	}
}

func TestCheck_StatusTransitions(t *testing.T) {
	u, listener := testListenerURL(t)

	p := New(Config{Timeout: time.Second})

	first := p.Check(context.Background(), u)
	if first.Status != StatusUp {
		t.Fatalf("Status = %v, want %v", first.Status, StatusUp)
	}
	if first.StatusChanged {
		t.Error("First probe should not report a status change")
	}

	_ = listener.Close()

	second := p.Check(context.Background(), u)
	if second.Status != StatusDown {
		t.Fatalf("Status = %v, want %v", second.Status, StatusDown)
	}
	if !second.StatusChanged {
		t.Error("Up to down transition should report a status change")
	}
	if second.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1", second.ConsecutiveFailures)
	}
	if second.LastSuccessTime == nil {
		t.Error("Expected last success time to be preserved after failure")
	}

	third := p.Check(context.Background(), u)
	if third.StatusChanged {
		t.Error("Repeated down status should not report a status change")
	}
	if third.ConsecutiveFailures != 2 {
		t.Errorf("ConsecutiveFailures = %d, want 2", third.ConsecutiveFailures)
	}
}

func TestTrack_ConcurrentAccess(t *testing.T) {
	p := New(Config{})
	target := "http://example.com/"
	concurrency := 100

	done := make(chan bool, concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			result := Result{Target: target, Status: StatusDown}
			p.track(&result)
			done <- true
		}()
	}

	for i := 0; i < concurrency; i++ {
		<-done
	}

	if p.failures[target] != concurrency {
		t.Errorf("failures = %d, want %d", p.failures[target], concurrency)
	}
}

func TestTrack_MultipleTargets(t *testing.T) {
	p := New(Config{})

	for i := 0; i < 3; i++ {
		result := Result{Target: "http://a/", Status: StatusDown}
		p.track(&result)
	}

	for i := 0; i < 5; i++ {
		result := Result{Target: "http://b/", Status: StatusDown}
		p.track(&result)
	}

	if p.failures["http://a/"] != 3 {
		t.Errorf("failures[a] = %d, want 3", p.failures["http://a/"])
	}
	if p.failures["http://b/"] != 5 {
		t.Errorf("failures[b] = %d, want 5", p.failures["http://b/"])
	}

	result := Result{Target: "http://a/", Status: StatusUp}
	p.track(&result)

	if p.failures["http://a/"] != 0 {
		t.Errorf("failures[a] = %d, want 0 after success", p.failures["http://a/"])
	}
	if p.failures["http://b/"] != 5 {
		t.Errorf("failures[b] = %d, want 5 after unrelated success", p.failures["http://b/"])
	}
}

func TestCheckAll(t *testing.T) {
	up, listener := testListenerURL(t)
	defer func() { _ = listener.Close() }()
	down := deadTargetURL(t)

	p := New(Config{Timeout: 2 * time.Second})
	report := p.CheckAll(context.Background(), []urlparse.URL{up, down})

	if report.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", report.Summary.Total)
	}
	if report.Summary.Up != 1 {
		t.Errorf("Summary.Up = %d, want 1", report.Summary.Up)
	}
	if report.Summary.Down != 1 {
		t.Errorf("Summary.Down = %d, want 1", report.Summary.Down)
	}
	if report.Summary.Overall != StatusDown {
		t.Errorf("Summary.Overall = %v, want %v", report.Summary.Overall, StatusDown)
	}

	// Results keep the input order
	if report.Targets[0].Target != up.String() {
		t.Errorf("Targets[0] = %s, want %s", report.Targets[0].Target, up.String())
	}
	if report.Targets[1].Target != down.String() {
		t.Errorf("Targets[1] = %s, want %s", report.Targets[1].Target, down.String())
	}
}

func TestCheckAll_Empty(t *testing.T) {
	p := New(Config{})
	report := p.CheckAll(context.Background(), nil)

	if report.Summary.Total != 0 {
		t.Errorf("Summary.Total = %d, want 0", report.Summary.Total)
	}
	if report.Summary.Overall != StatusUnknown {
		t.Errorf("Summary.Overall = %v, want %v", report.Summary.Overall, StatusUnknown)
	}
}

func TestWatch(t *testing.T) {
	u, listener := testListenerURL(t)
	defer func() { _ = listener.Close() }()

	p := New(Config{Timeout: time.Second, Interval: 50 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	results := p.Watch(ctx, []urlparse.URL{u})

	for i := 0; i < 3; i++ {
		select {
		case result, ok := <-results:
			if !ok {
				t.Fatal("Watch channel closed early")
			}
			if result.Status != StatusUp {
				t.Errorf("Status = %v, want %v", result.Status, StatusUp)
			}
			if result.Target != u.String() {
				t.Errorf("Target = %s, want %s", result.Target, u.String())
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Timed out waiting for watch result")
		}
	}

	cancel()

	for {
		select {
		case _, ok := <-results:
			if !ok {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Watch channel not closed after cancel")
		}
	}
}

func TestSuggestDialAction(t *testing.T) {
	tests := []struct {
		name string
		err  error
		port uint16
		want string
	}{
		{
			name: "connection refused",
			err:  fmt.Errorf("connection refused"),
			port: 80,
			want: "Port 80 connection refused. Verify the server is running and the port is correct.",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("i/o timeout"),
			port: 80,
			want: "Port 80 connection timeout. Check network connectivity and firewall rules.",
		},
		{
			name: "context deadline",
			err:  fmt.Errorf("context deadline exceeded"),
			port: 80,
			want: "Port 80 connection timeout. Check network connectivity and firewall rules.",
		},
		{
			name: "unknown host",
			err:  fmt.Errorf("lookup nosuch.invalid: no such host"),
			port: 80,
			want: "Host not found. Check the hostname for typos.",
		},
		{
			name: "no route to host",
			err:  fmt.Errorf("no route to host"),
			port: 80,
			want: "Network unreachable. Check network configuration.",
		},
		{
			name: "other error",
			err:  fmt.Errorf("unknown error"),
			port: 80,
			want: "Port 80 connection failed. Verify the server is reachable.",
		},
		{
			name: "nil error",
			err:  nil,
			port: 80,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestDialAction(tt.err, tt.port)
			if got != tt.want {
				t.Errorf("SuggestDialAction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		errMsg string
		want   string
	}{
		{"context deadline exceeded", "timeout"},
		{"i/o timeout", "timeout"},
		{"connection refused", "connection_refused"},
		{"no route to host", "connection_refused"},
		{"lookup nosuch.invalid: no such host", "dns_error"},
		{"circuit breaker open - target unavailable", "circuit_breaker"},
		{"rate limit exceeded", "rate_limited"},
		{"context canceled", "canceled"},
		{"something else entirely", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"_"+tt.errMsg, func(t *testing.T) {
			got := getErrorType(tt.errMsg)
			if got != tt.want {
				t.Errorf("getErrorType(%q) = %q, want %q", tt.errMsg, got, tt.want)
			}
		})
	}
}

func TestCheck_ErrorMentionsAddress(t *testing.T) {
	u := deadTargetURL(t)

	p := New(Config{Timeout: time.Second})
	result := p.Check(context.Background(), u)

	if !strings.Contains(result.Error, u.Address()) {
		t.Errorf("Error = %q, want it to mention %s", result.Error, u.Address())
	}
}
