package envdsl

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/envdsl/pkg/environment"
	"github.com/dmitrymomot/envdsl/pkg/validator"
)

// Node is a configuration tree node: a Reader leaf or a Shape branch.
type Node interface {
	node()
}

// Reader is a leaf that produces one Outcome per read.
type Reader interface {
	Node
	Key() string
	ReadEnv(env Environ) Outcome
}

type mode uint8

const (
	modeRequired mode = iota
	modeOptional
	modeDefault
)

// FieldReader reads one variable and parses it into T. It is an immutable
// value: every modifier returns a modified copy and construction never fails.
type FieldReader[T any] struct {
	key       string
	typeName  string
	transform func(string) (T, error)
	validate  func(value T, raw string) string
	rules     []validator.Rule[T]
	sensitive bool
	mode      mode
	fallback  T
	gate      []environment.Environment
}

func newFieldReader[T any](key, typeName string, transform func(string) (T, error), validate func(T, string) string) FieldReader[T] {
	return FieldReader[T]{
		key:       key,
		typeName:  typeName,
		transform: transform,
		validate:  validate,
	}
}

func (FieldReader[T]) node() {}

// Key returns the variable name.
func (r FieldReader[T]) Key() string {
	return r.key
}

// Type returns the descriptive type name used in reports.
func (r FieldReader[T]) Type() string {
	return r.typeName
}

// Optional returns a reader that succeeds with a nil value when the variable
// is unset. With a non-empty gate the absence is tolerated only while the
// runtime environment is one of envs.
func (r FieldReader[T]) Optional(envs ...environment.Environment) FieldReader[T] {
	r.mode = modeOptional
	r.gate = slices.Clone(envs)
	return r
}

// Default returns a reader that succeeds with v when the variable is unset,
// under the same gate rule as Optional.
func (r FieldReader[T]) Default(v T, envs ...environment.Environment) FieldReader[T] {
	r.mode = modeDefault
	r.fallback = v
	r.gate = slices.Clone(envs)
	return r
}

// Sensitive returns a reader whose outcomes are flagged so reports hide the value.
func (r FieldReader[T]) Sensitive() FieldReader[T] {
	r.sensitive = true
	return r
}

// Check returns a reader that also applies rules to the parsed value. Every
// failing rule message ends up in a single MalformedValue.
func (r FieldReader[T]) Check(rules ...validator.Rule[T]) FieldReader[T] {
	r.rules = slices.Concat(r.rules, rules)
	return r
}

// Read reads the variable from the live process environment.
func (r FieldReader[T]) Read() Outcome {
	return r.ReadEnv(Process())
}

// ReadEnv reads the variable from env. Nothing is memoized.
func (r FieldReader[T]) ReadEnv(env Environ) Outcome {
	raw, ok := env.Lookup(r.key)
	if !ok {
		return r.absent(env.Name())
	}
	return r.parse(raw)
}

func (r FieldReader[T]) absent(current environment.Environment) Outcome {
	if r.mode == modeRequired || !environment.Allows(current, r.gate...) {
		return MissingKey{Key: r.key, Type: r.typeName}
	}

	var value any
	if r.mode == modeDefault {
		value = r.fallback
	}
	return Success{Key: r.key, Type: r.typeName, Value: value, Sensitive: r.sensitive}
}

// parse runs transform, built-in validation and rules. Errors and panics
// become MalformedValue; nothing escapes.
func (r FieldReader[T]) parse(raw string) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = r.malformed(raw, faultMessage(rec))
		}
	}()

	value, err := r.transform(raw)
	if err != nil {
		return r.malformed(raw, err.Error())
	}
	if r.validate != nil {
		if msg := r.validate(value, raw); msg != "" {
			return r.malformed(raw, msg)
		}
	}
	if err := validator.Apply(value, r.rules...); err != nil {
		return r.malformed(raw, err.Error())
	}

	return Success{Key: r.key, Type: r.typeName, Value: value, Sensitive: r.sensitive}
}

func (r FieldReader[T]) malformed(raw, message string) MalformedValue {
	return MalformedValue{
		Key:       r.key,
		Type:      r.typeName,
		Raw:       raw,
		Sensitive: r.sensitive,
		Message:   message,
	}
}

func faultMessage(rec any) string {
	switch v := rec.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
