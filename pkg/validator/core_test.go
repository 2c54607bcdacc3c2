package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envdsl/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns single message", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add("must be positive")
		assert.Equal(t, "must be positive", errs.Error())
	})

	t.Run("joins multiple messages in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add("must be at least 10")
		errs.Add("must be an integer")
		assert.Equal(t, "must be at least 10; must be an integer", errs.Error())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(42.0, validator.Min(1.0), validator.Max(100.0))
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(0.5,
			validator.Min(1.0),
			validator.Integer[float64](),
			validator.Max(100.0),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "must be at least 1", errs[0])
		assert.Equal(t, "must be an integer", errs[1])
	})

	t.Run("skips rules without check", func(t *testing.T) {
		err := validator.Apply("x", validator.Rule[string]{Message: "never"})
		assert.NoError(t, err)
	})

	t.Run("matches sentinel", func(t *testing.T) {
		err := validator.Apply("", validator.NotEmpty())
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	})
}

func TestEach(t *testing.T) {
	rule := validator.Each(validator.Positive[float64]())

	assert.True(t, rule.Check([]float64{1, 2, 3}))
	assert.True(t, rule.Check(nil))
	assert.False(t, rule.Check([]float64{1, -2, 3}))
	assert.Equal(t, "each element: must be positive", rule.Message)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		inner := validator.Apply(5, validator.Max(3))
		wrapped := fmt.Errorf("reading PORT: %w", inner)

		assert.True(t, validator.IsValidationError(wrapped))
		assert.Equal(t, validator.ValidationErrors{"must be at most 3"}, validator.ExtractValidationErrors(wrapped))
	})

	t.Run("other error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})
}
