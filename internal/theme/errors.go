package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrRuntimeNotReady is returned when an operation needs the UI runtime
	// before one has been attached.
	ErrRuntimeNotReady = errors.New("ui runtime is not initialized")
	// ErrThemeNotFound is returned when a theme key is not registered.
	ErrThemeNotFound = errors.New("theme not found")
)

// InvalidThemeError describes a theme definition that failed semantic
// validation.
type InvalidThemeError struct {
	Name   string
	Reason string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q: %s", e.Name, e.Reason)
}

// ThemeModeError is the InvalidThemeError specialization for a definition
// that has neither a dark nor a light mode.
type ThemeModeError struct {
	InvalidThemeError
}

// NewThemeModeError builds the error for a definition missing both modes.
func NewThemeModeError(name string) *ThemeModeError {
	return &ThemeModeError{InvalidThemeError{
		Name:   name,
		Reason: `definition has neither "dark" nor "light" mode`,
	}}
}

// Unwrap lets errors.As treat a mode error as an InvalidThemeError.
func (e *ThemeModeError) Unwrap() error {
	return &e.InvalidThemeError
}
