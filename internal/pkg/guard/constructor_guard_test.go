package guard_test

import (
	"errors"
	"testing"

	"pizzashop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type recipeKey struct {
		value string
		guard guard.ConstructorGuard
	}

	errRecipeKeyNotConstructed := errors.New("recipeKey must be created via newRecipeKey")

	newRecipeKey := func(value string) (recipeKey, error) {
		if value == "" {
			return recipeKey{}, errors.New("recipe key is required")
		}
		return recipeKey{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		key, err := newRecipeKey("pepperoni")

		require.NoError(t, err)
		require.NoError(t, key.guard.Validate(errRecipeKeyNotConstructed))
		assert.Equal(t, "pepperoni", key.value)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var key recipeKey

		assert.Equal(t, errRecipeKeyNotConstructed, key.guard.Validate(errRecipeKeyNotConstructed))
	})
}
