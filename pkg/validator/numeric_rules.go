package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](min T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value >= min
		},
		Message: fmt.Sprintf("must be at least %v", min),
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](max T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value <= max
		},
		Message: fmt.Sprintf("must be at most %v", max),
	}
}

// Between validates that a numeric value lies within [min, max].
func Between[T Numeric](min, max T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value >= min && value <= max
		},
		Message: fmt.Sprintf("must be between %v and %v", min, max),
	}
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric]() Rule[T] {
	var zero T
	return Rule[T]{
		Check: func(value T) bool {
			return value > zero
		},
		Message: "must be positive",
	}
}

// Integer validates that a float carries no fractional part.
func Integer[T ~float32 | ~float64]() Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value == T(int64(value))
		},
		Message: "must be an integer",
	}
}
