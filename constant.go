package envdsl

import (
	"reflect"
	"time"
)

// ConstantReader always succeeds with a fixed value and never consults the
// environment.
type ConstantReader[T any] struct {
	value     T
	sensitive bool
}

// Constant returns a reader for a fixed value. Its key is "(constant)" and
// its type name follows the value's runtime shape: "string", "number",
// "boolean", "duration", "<elem>[]" for slices and arrays, "object" otherwise.
func Constant[T any](value T) ConstantReader[T] {
	return ConstantReader[T]{value: value}
}

func (ConstantReader[T]) node() {}

// Key returns "(constant)".
func (c ConstantReader[T]) Key() string {
	return constantKey
}

// Sensitive returns a reader whose outcome is flagged so reports hide the value.
func (c ConstantReader[T]) Sensitive() ConstantReader[T] {
	c.sensitive = true
	return c
}

// Read returns the fixed value.
func (c ConstantReader[T]) Read() Outcome {
	return Success{
		Key:       constantKey,
		Type:      typeNameOf(reflect.TypeOf(c.value)),
		Value:     c.value,
		Sensitive: c.sensitive,
	}
}

// ReadEnv implements Reader; env is ignored.
func (c ConstantReader[T]) ReadEnv(Environ) Outcome {
	return c.Read()
}

func typeNameOf(t reflect.Type) string {
	if t == nil {
		return "undefined"
	}
	switch t.Kind() {
	case reflect.String:
		return typeString
	case reflect.Bool:
		return typeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if t == reflect.TypeOf(time.Duration(0)) {
			return typeDuration
		}
		return typeNumber
	case reflect.Slice, reflect.Array:
		return typeNameOf(t.Elem()) + arrayTypeSuffix
	default:
		return "object"
	}
}
