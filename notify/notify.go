// Package notify provides cross-platform OS notification support.
//
// Notifications are used by the watch command to surface probe status
// transitions (a target going down, recovering, or degrading) without
// requiring the terminal to be visible.
package notify

import (
	"context"
	"errors"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title (typically the target URL)
	Title string

	// Message is the notification body (status description)
	Message string

	// Severity indicates the notification severity
	Severity string // "critical", "warning", "info"

	// Target is the probed URL this notification refers to
	Target string

	// Timestamp when the notification was created
	Timestamp time.Time
}

// Notifier is the interface for OS notification systems.
type Notifier interface {
	// Send sends a notification to the OS notification system.
	Send(ctx context.Context, notification Notification) error

	// IsAvailable returns true if OS notifications are available.
	IsAvailable() bool

	// Close cleans up notification system resources.
	Close() error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "urldial",
		Timeout: 5 * time.Second,
	}
}

// New creates a new notifier.
func New(config Config) (Notifier, error) {
	return newPlatformNotifier(config)
}

// Sentinel errors returned by Notifier implementations.
var (
	ErrNotAvailable       = errors.New("OS notifications not available")
	ErrNotificationFailed = errors.New("failed to send notification")
	ErrTimeout            = errors.New("notification timeout")
)
