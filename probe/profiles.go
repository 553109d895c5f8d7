package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile represents a probe configuration profile.
type Profile struct {
	Name                   string        `yaml:"name"`
	Interval               time.Duration `yaml:"interval"`
	Timeout                time.Duration `yaml:"timeout"`
	DegradedThreshold      time.Duration `yaml:"degradedThreshold"`
	CircuitBreaker         bool          `yaml:"circuitBreaker"`
	CircuitBreakerFailures int           `yaml:"circuitBreakerFailures"`
	CircuitBreakerTimeout  time.Duration `yaml:"circuitBreakerTimeout"`
	RateLimit              int           `yaml:"rateLimit"`
	Verbose                bool          `yaml:"verbose"`
	LogLevel               string        `yaml:"logLevel"`
	LogFormat              string        `yaml:"logFormat"`
	Metrics                bool          `yaml:"metrics"`
	MetricsPort            int           `yaml:"metricsPort"`
}

// Profiles contains multiple named profiles.
type Profiles struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Config converts the profile into a Prober config.
func (p Profile) Config() Config {
	return Config{
		Timeout:                p.Timeout,
		Interval:               p.Interval,
		DegradedThreshold:      p.DegradedThreshold,
		EnableCircuitBreaker:   p.CircuitBreaker,
		CircuitBreakerFailures: p.CircuitBreakerFailures,
		CircuitBreakerTimeout:  p.CircuitBreakerTimeout,
		RateLimit:              p.RateLimit,
		EnableMetrics:          p.Metrics,
		MetricsPort:            p.MetricsPort,
	}
}

// LoadProfiles loads probe profiles from the given directory.
func LoadProfiles(dir string) (*Profiles, error) {
	profilePath := filepath.Join(dir, ".urldial", "profiles.yaml")

	data, err := os.ReadFile(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return getDefaultProfiles(), nil
		}
		return nil, fmt.Errorf("failed to read probe profiles: %w", err)
	}

	var profiles Profiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse probe profiles: %w", err)
	}
	if profiles.Profiles == nil {
		profiles.Profiles = make(map[string]Profile)
	}

	// Merge with defaults for any missing profiles
	defaults := getDefaultProfiles()
	for name, profile := range defaults.Profiles {
		if _, exists := profiles.Profiles[name]; !exists {
			profiles.Profiles[name] = profile
		}
	}

	return &profiles, nil
}

// getDefaultProfiles returns the default probe profiles.
func getDefaultProfiles() *Profiles {
	return &Profiles{
		Profiles: map[string]Profile{
			"development": {
				Name:                   "development",
				Interval:               5 * time.Second,
				Timeout:                2 * time.Second,
				DegradedThreshold:      1 * time.Second,
				CircuitBreaker:         false,
				CircuitBreakerFailures: 5,
				CircuitBreakerTimeout:  60 * time.Second,
				RateLimit:              0,
				Verbose:                true,
				LogLevel:               "debug",
				LogFormat:              "pretty",
				Metrics:                false,
				MetricsPort:            9090,
			},
			"production": {
				Name:                   "production",
				Interval:               30 * time.Second,
				Timeout:                5 * time.Second,
				DegradedThreshold:      500 * time.Millisecond,
				CircuitBreaker:         true,
				CircuitBreakerFailures: 5,
				CircuitBreakerTimeout:  60 * time.Second,
				RateLimit:              10,
				Verbose:                false,
				LogLevel:               "info",
				LogFormat:              "json",
				Metrics:                true,
				MetricsPort:            9090,
			},
			"ci": {
				Name:                   "ci",
				Interval:               10 * time.Second,
				Timeout:                10 * time.Second,
				DegradedThreshold:      2 * time.Second,
				CircuitBreaker:         false,
				CircuitBreakerFailures: 10,
				CircuitBreakerTimeout:  30 * time.Second,
				RateLimit:              0,
				Verbose:                true,
				LogLevel:               "info",
				LogFormat:              "json",
				Metrics:                false,
				MetricsPort:            9090,
			},
			"staging": {
				Name:                   "staging",
				Interval:               15 * time.Second,
				Timeout:                5 * time.Second,
				DegradedThreshold:      1 * time.Second,
				CircuitBreaker:         true,
				CircuitBreakerFailures: 5,
				CircuitBreakerTimeout:  60 * time.Second,
				RateLimit:              20,
				Verbose:                true,
				LogLevel:               "debug",
				LogFormat:              "json",
				Metrics:                true,
				MetricsPort:            9090,
			},
		},
	}
}

// GetProfile returns a profile by name, or an error if not found.
func (p *Profiles) GetProfile(name string) (Profile, error) {
	profile, exists := p.Profiles[name]
	if !exists {
		return Profile{}, fmt.Errorf("profile '%s' not found. Available profiles: development, production, ci, staging", name)
	}
	return profile, nil
}

// SaveSampleProfiles saves a sample profiles.yaml file.
func SaveSampleProfiles(dir string) error {
	configDir := filepath.Join(dir, ".urldial")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create .urldial directory: %w", err)
	}

	profilePath := filepath.Join(configDir, "profiles.yaml")

	if _, err := os.Stat(profilePath); err == nil {
		return fmt.Errorf("profiles.yaml already exists at %s", profilePath)
	}

	profiles := getDefaultProfiles()
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	header := `# Probe Profiles for urldial watch
#
# Profiles allow you to define different probe configurations
# for different environments (development, production, ci, staging)
#
# Usage: urldial watch --profile production http://example.com
#
# Available settings:
#   interval:               Time between probe rounds in watch mode
#   timeout:                Maximum time to wait for a connection
#   degradedThreshold:      Connect latency above which a target counts as degraded
#   circuitBreaker:         Enable circuit breaker pattern
#   circuitBreakerFailures: Failures before circuit opens
#   circuitBreakerTimeout:  Time before circuit retry
#   rateLimit:              Max probes per second per target (0 = unlimited)
#   verbose:                Show detailed output
#   logLevel:               Logging level (debug, info, warn, error)
#   logFormat:              Log format (json, pretty, text)
#   metrics:                Enable Prometheus metrics endpoint
#   metricsPort:            Prometheus metrics port

`

	content := header + string(data)
	if err := os.WriteFile(profilePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}

	return nil
}
