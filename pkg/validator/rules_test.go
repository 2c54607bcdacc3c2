package validator_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envdsl/pkg/validator"
)

func TestNumericRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule[float64]
		value float64
		want  bool
	}{
		{"min passes on boundary", validator.Min(1.0), 1, true},
		{"min fails below", validator.Min(1.0), 0.99, false},
		{"max passes on boundary", validator.Max(10.0), 10, true},
		{"max fails above", validator.Max(10.0), 10.5, false},
		{"between passes inside", validator.Between(1.0, 65535.0), 8080, true},
		{"between fails outside", validator.Between(1.0, 65535.0), 70000, false},
		{"positive passes", validator.Positive[float64](), 0.1, true},
		{"positive fails on zero", validator.Positive[float64](), 0, false},
		{"integer passes", validator.Integer[float64](), 42, true},
		{"integer fails on fraction", validator.Integer[float64](), 4.2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check(tt.value))
		})
	}

	assert.Equal(t, "must be between 1 and 65535", validator.Between(1.0, 65535.0).Message)
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule[string]
		value string
		want  bool
	}{
		{"not empty passes", validator.NotEmpty(), "x", true},
		{"not empty fails on blank", validator.NotEmpty(), "  \t", false},
		{"min len counts runes", validator.MinLen(3), "héé", true},
		{"min len fails", validator.MinLen(3), "ab", false},
		{"max len passes", validator.MaxLen(3), "abc", true},
		{"max len fails", validator.MaxLen(3), "abcd", false},
		{"prefix passes", validator.HasPrefix("postgres://"), "postgres://db", true},
		{"prefix fails", validator.HasPrefix("postgres://"), "mysql://db", false},
		{"no whitespace passes", validator.NoWhitespace(), "token", true},
		{"no whitespace fails", validator.NoWhitespace(), "to ken", false},
		{"one of fold passes", validator.OneOfFold("debug", "info"), "INFO", true},
		{"one of fold fails", validator.OneOfFold("debug", "info"), "trace", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check(tt.value))
		})
	}
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	oneOf := validator.OneOf("json", "text")
	assert.True(t, oneOf.Check("json"))
	assert.False(t, oneOf.Check("xml"))
	assert.Equal(t, "must be one of: json, text", oneOf.Message)

	noneOf := validator.NoneOf(0.0, 1.0)
	assert.True(t, noneOf.Check(2))
	assert.False(t, noneOf.Check(1))
	assert.Equal(t, "must not be one of: 0, 1", noneOf.Message)
}

func TestCollectionRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinItems[string](1).Check([]string{"a"}))
	assert.False(t, validator.MinItems[string](2).Check([]string{"a"}))
	assert.True(t, validator.MaxItems[bool](2).Check([]bool{true, false}))
	assert.False(t, validator.MaxItems[bool](1).Check([]bool{true, false}))
	assert.True(t, validator.Unique[string]().Check([]string{"a", "b"}))
	assert.False(t, validator.Unique[string]().Check([]string{"a", "b", "a"}))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("compiled pattern", func(t *testing.T) {
		rule := validator.Matches(regexp.MustCompile(`^[a-z0-9.-]+$`), "hostname")
		assert.True(t, rule.Check("db.internal"))
		assert.False(t, rule.Check("DB_INTERNAL"))
		assert.Equal(t, "must match hostname format", rule.Message)
	})

	t.Run("pattern string", func(t *testing.T) {
		rule, err := validator.MatchesPattern(`^\d{4}$`, "pin")
		require.NoError(t, err)
		assert.True(t, rule.Check("1234"))
		assert.False(t, rule.Check("12a4"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := validator.MatchesPattern(`(`, "broken")
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrInvalidPattern))
	})
}
