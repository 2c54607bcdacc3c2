package envdsl

import "time"

// String reads key verbatim.
func String(key string) FieldReader[string] {
	return newFieldReader(key, typeString, parseString, nil)
}

// Number reads key as a float64. The text must both start with a float
// literal ("Cannot parse as float" otherwise) and match the strict grammar
// -?(0|[1-9]\d*)(\.\d*)?([eE][+-]?\d+)? ("Badly formatted number" otherwise).
func Number(key string) FieldReader[float64] {
	return newFieldReader(key, typeNumber, parseNumber, validateNumber)
}

// Boolean reads key as a bool. Only the exact texts "true" and "false" are accepted.
func Boolean(key string) FieldReader[bool] {
	return newFieldReader(key, typeBoolean, parseBoolean, validateBoolean)
}

// Duration reads key with time.ParseDuration.
func Duration(key string) FieldReader[time.Duration] {
	return newFieldReader(key, typeDuration, time.ParseDuration, nil)
}

// Custom reads key with a caller-supplied parse function. A returned error or
// a panic inside parse is reported as a MalformedValue carrying its message.
func Custom[T any](key, typeName string, parse func(string) (T, error)) FieldReader[T] {
	return newFieldReader(key, typeName, parse, nil)
}

// ArrayBuilder picks the element type of a list variable.
type ArrayBuilder struct {
	key string
	sep string
}

// Array starts a reader for a separated list held in key. The separator
// defaults to ",". Splitting an empty value yields one empty element.
func Array(key string) ArrayBuilder {
	return ArrayBuilder{key: key, sep: defaultArraySep}
}

// Sep returns a builder splitting on sep instead of ",".
func (b ArrayBuilder) Sep(sep string) ArrayBuilder {
	b.sep = sep
	return b
}

// Strings reads the list as []string.
func (b ArrayBuilder) Strings() FieldReader[[]string] {
	return newFieldReader(b.key, typeString+arrayTypeSuffix, splitter(b.sep, parseString), nil)
}

// Numbers reads the list as []float64. Elements are parsed leniently; the
// read fails if any element has no leading float literal.
func (b ArrayBuilder) Numbers() FieldReader[[]float64] {
	return newFieldReader(b.key, typeNumber+arrayTypeSuffix, splitter(b.sep, parseNumber), validateNumbers)
}

// Booleans reads the list as []bool. Every element must be "true" or "false".
func (b ArrayBuilder) Booleans() FieldReader[[]bool] {
	return newFieldReader(b.key, typeBoolean+arrayTypeSuffix, splitter(b.sep, parseBoolean), booleansValidator(b.sep))
}
