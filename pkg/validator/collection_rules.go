package validator

import "fmt"

// MinItems validates that a slice holds at least min elements.
func MinItems[T any](min int) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return len(value) >= min
		},
		Message: fmt.Sprintf("must contain at least %d items", min),
	}
}

// MaxItems validates that a slice holds at most max elements.
func MaxItems[T any](max int) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return len(value) <= max
		},
		Message: fmt.Sprintf("must contain at most %d items", max),
	}
}

// Unique validates that a slice holds no duplicate elements.
func Unique[T comparable]() Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			seen := make(map[T]struct{}, len(value))
			for _, v := range value {
				if _, ok := seen[v]; ok {
					return false
				}
				seen[v] = struct{}{}
			}
			return true
		},
		Message: "must not contain duplicates",
	}
}
