package validator

import (
	"errors"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule represents a single validation rule over values of type T.
type Rule[T any] struct {
	Check   func(T) bool
	Message string
}

// ValidationErrors represents the messages of every failed rule, in rule order.
type ValidationErrors []string

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	return strings.Join(ve, "; ")
}

func (ve *ValidationErrors) Add(message string) {
	*ve = append(*ve, message)
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Is matches ErrValidationFailed so callers can use errors.Is.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Apply executes every rule against value and returns the collected failures.
// Rules with a nil Check are skipped.
func Apply[T any](value T, rules ...Rule[T]) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check(value) {
			errs.Add(rule.Message)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Each lifts a rule over T into a rule over []T that passes only when every
// element passes.
func Each[T any](rule Rule[T]) Rule[[]T] {
	return Rule[[]T]{
		Check: func(values []T) bool {
			if rule.Check == nil {
				return true
			}
			for _, v := range values {
				if !rule.Check(v) {
					return false
				}
			}
			return true
		},
		Message: "each element: " + rule.Message,
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
