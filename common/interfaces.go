// Package common provides shared constants, types, and utilities
// used across the VPN Switcher application.
package common

// Notifier defines the interface for sending desktop notifications.
// Implementations are best-effort: failures are logged, never propagated.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}

// Logger defines the interface for structured logging.
// Components receive a Logger instead of reaching for a process-wide
// global; the level is configured once at startup.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}

// RecencyStore defines the interface for the bounded history of
// previously selected profiles.
type RecencyStore interface {
	// Read returns the recorded profile IDs, oldest first.
	Read() ([]string, error)
	// Record appends a profile ID, deduplicating and enforcing the bound.
	Record(id string) error
}
