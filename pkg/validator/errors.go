package validator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the only failure kind the validators report. Every *ConfigError
// matches it with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError describes the first violated rule of a configuration.
type ConfigError struct {
	// Func is the validator that rejected the configuration.
	Func string
	// Field is the offending configuration field, as spelled in manifests.
	Field string
	// Section is the identifier of the offending section, when one is known.
	Section string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s: section %q: %s", e.Func, e.Section, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Func, e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func newError(fn, field, section, message string) *ConfigError {
	return &ConfigError{
		Func:    fn,
		Field:   field,
		Section: section,
		Message: message,
	}
}
