// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors, detected at load time.
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidRule   = errors.New("invalid classification rule")

	// Input errors.
	ErrTooManyFragments = errors.New("fragment count exceeds limit")
	ErrNotFound         = errors.New("not found")
)

// ConfigError wraps a configuration problem with the field that caused it.
// Misconfiguration must surface at construction time, not during document
// processing.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// NewConfigError creates a configuration error for a named field.
func NewConfigError(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}
