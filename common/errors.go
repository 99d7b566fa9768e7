// Package common provides shared constants, types, and utilities
// used across the VPN Switcher application.
package common

import "errors"

// Sentinel errors for switcher operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// External tooling errors.
	ErrExternalTool = errors.New("external tool failed")
	ErrTimeout      = errors.New("operation timed out")

	// Profile errors.
	ErrProfileNotFound = errors.New("profile not found")
	ErrClassification  = errors.New("profile identifier cannot be grouped")

	// Configuration errors.
	ErrConfig     = errors.New("invalid configuration")
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
