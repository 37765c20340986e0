package antenna

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates a configuration outside its valid domain.
var ErrInvalidConfiguration = errors.New("antenna: invalid configuration")

// ConfigError wraps ErrInvalidConfiguration with the offending field.
type ConfigError struct {
	Kind   Kind
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s=%g %s", ErrInvalidConfiguration, e.Kind, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
