package config

import (
	"errors"
	"fmt"
)

// Error types returned by the loaders.
var (
	// ErrConfig is wrapped by every configuration error.
	ErrConfig = errors.New("configuration error")

	// ErrRootNotSet is returned when no raw path was configured.
	ErrRootNotSet = fmt.Errorf("%w: root path not set", ErrConfig)

	// ErrRootNotFound is returned when the raw path does not exist.
	ErrRootNotFound = fmt.Errorf("%w: root path not found", ErrConfig)

	// ErrRootUnusable is returned when the raw path is not a readable directory.
	ErrRootUnusable = fmt.Errorf("%w: root path not usable", ErrConfig)

	// ErrMissingDir is wrapped by MissingDirError.
	ErrMissingDir = errors.New("data directory missing")
)

// ValidationError describes a configuration value that was rejected.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("configuration error: invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("configuration error: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfig, e.Err}
	}
	return []error{ErrConfig}
}

// MissingDirError reports an expected data directory that is absent.
type MissingDirError struct {
	Path string
}

func (e *MissingDirError) Error() string {
	return fmt.Sprintf("data directory missing: %s", e.Path)
}

func (e *MissingDirError) Unwrap() error {
	return ErrMissingDir
}
