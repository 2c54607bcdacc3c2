package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Matches validates that a string matches re. The description is used in the
// failure message, e.g. "must match hostname format".
func Matches(re *regexp.Regexp, description string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return re.MatchString(value)
		},
		Message: fmt.Sprintf("must match %s format", description),
	}
}

// MatchesPattern compiles pattern and returns the equivalent Matches rule.
func MatchesPattern(pattern, description string) (Rule[string], error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule[string]{}, errors.Join(ErrInvalidPattern, err)
	}
	return Matches(re, description), nil
}

// NoWhitespace validates that a string contains no whitespace characters.
func NoWhitespace() Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return !strings.ContainsFunc(value, unicode.IsSpace)
		},
		Message: "must not contain whitespace",
	}
}
