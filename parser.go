package envdsl

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	msgNotFloat       = "Cannot parse as float"
	msgBadNumber      = "Badly formatted number"
	msgNotBoolean     = "Expected `true` or `false`"
	msgNotFloatEach   = "Cannot parse each element as float"
	msgNotBooleanEach = "Expected each element to be `true` or `false`"

	defaultArraySep  = ","
	constantKey      = "(constant)"
	undefinedDisplay = "(undefined)"
	sensitiveDisplay = "(sensitive)"

	typeString      = "string"
	typeNumber      = "number"
	typeBoolean     = "boolean"
	typeDuration    = "duration"
	arrayTypeSuffix = "[]"
)

var (
	// strictNumber is the accepted textual form of a number variable.
	strictNumber = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d*)?(?:[eE][+\-]?\d+)?$`)

	// leadingFloat matches the longest float literal at the start of a string.
	leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// lenientFloat parses the leading float literal of raw, ignoring leading
// whitespace and any trailing text. It returns NaN when raw has no such
// literal.
func lenientFloat(raw string) float64 {
	literal := leadingFloat.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if literal == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func parseString(raw string) (string, error) {
	return raw, nil
}

func parseNumber(raw string) (float64, error) {
	return lenientFloat(raw), nil
}

// validateNumber runs both checks: the lenient parse must yield a number and
// the raw text must match the strict grammar.
func validateNumber(value float64, raw string) string {
	if math.IsNaN(value) {
		return msgNotFloat
	}
	if !strictNumber.MatchString(raw) {
		return msgBadNumber
	}
	return ""
}

func parseBoolean(raw string) (bool, error) {
	return raw == "true", nil
}

func validateBoolean(_ bool, raw string) string {
	if !isBooleanLiteral(raw) {
		return msgNotBoolean
	}
	return ""
}

func isBooleanLiteral(raw string) bool {
	return raw == "true" || raw == "false"
}

// splitter returns a transform splitting raw on sep and mapping every element
// with parse. Splitting "" yields one empty element.
func splitter[T any](sep string, parse func(string) (T, error)) func(string) ([]T, error) {
	return func(raw string) ([]T, error) {
		parts := strings.Split(raw, sep)
		values := make([]T, len(parts))
		for i, part := range parts {
			v, err := parse(part)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	}
}

func validateNumbers(values []float64, _ string) string {
	for _, v := range values {
		if math.IsNaN(v) {
			return msgNotFloatEach
		}
	}
	return ""
}

func booleansValidator(sep string) func([]bool, string) string {
	return func(_ []bool, raw string) string {
		for _, part := range strings.Split(raw, sep) {
			if !isBooleanLiteral(part) {
				return msgNotBooleanEach
			}
		}
		return ""
	}
}
