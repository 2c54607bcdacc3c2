package envdsl

import "errors"

// Package-specific errors
var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDecodeConfig is returned when a valid configuration cannot be decoded into the target type
	ErrDecodeConfig = errors.New("failed to decode configuration")

	// ErrNilNode is returned when ReadConfig is called without a reader or shape
	ErrNilNode = errors.New("nil configuration node")
)

// ConfigError is returned when at least one key is missing or malformed.
// Its message is the full failure report.
type ConfigError struct {
	Result *Result
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return InvalidMessage(e.Result)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
