package discount_test

import (
	"fmt"
	"testing"

	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Apply(t *testing.T) {
	testCases := []struct {
		policy   discount.Policy
		total    float64
		expected float64
	}{
		{discount.RegularPrice(), 100, 100},
		{discount.BulkDiscount(), 100, 90},
		{discount.FamilyDiscount(), 100, 85},
		{discount.BulkDiscount(), 110, 99},
		{discount.FamilyDiscount(), 0, 0},
		{discount.RegularPrice(), 12.34, 12.34},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should apply %s to %v", tc.policy.Kind(), tc.total), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.policy.Apply(tc.total)) //nolint:testifylint // exactness is the point
		})
	}

	t.Run("should scale negative totals the same way", func(t *testing.T) {
		assert.InDelta(t, -9.0, discount.BulkDiscount().Apply(-10), 1e-12)
	})
}

func TestPolicy_Label(t *testing.T) {
	assert.Equal(t, "Regular Price (0% discount)", discount.RegularPrice().Label())
	assert.Equal(t, "Bulk Discount (10% discount)", discount.BulkDiscount().Label())
	assert.Equal(t, "Family Discount (15% discount)", discount.FamilyDiscount().Label())
}

func TestNew(t *testing.T) {
	t.Run("should build every valid kind", func(t *testing.T) {
		for _, kind := range []discount.Kind{discount.Regular, discount.Bulk, discount.Family} {
			p, err := discount.New(kind)

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, kind, p.Kind())
		}
	})

	t.Run("should reject invalid kinds", func(t *testing.T) {
		for _, kind := range []discount.Kind{discount.Unknown, discount.Kind(-1), discount.Kind(9)} {
			p, err := discount.New(kind)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, discount.ErrPolicyIsNotConstructed, p.Validate())
		}
	})

	t.Run("should be equal values for the same kind", func(t *testing.T) {
		first, _ := discount.New(discount.Bulk)
		second, _ := discount.New(discount.Bulk)

		assert.Equal(t, first, second)
	})
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input    string
		expected discount.Kind
	}{
		{"regular", discount.Regular},
		{"BULK", discount.Bulk},
		{" family ", discount.Family},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should parse %q", tc.input), func(t *testing.T) {
			kind, err := discount.ParseKind(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}

	t.Run("should reject unknown input", func(t *testing.T) {
		kind, err := discount.ParseKind("student")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, discount.Unknown, kind)
		assert.Contains(t, err.Error(), "student")
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "regular", discount.Regular.String())
	assert.Equal(t, "bulk", discount.Bulk.String())
	assert.Equal(t, "family", discount.Family.String())
	assert.Equal(t, "unknown", discount.Unknown.String())
	assert.Equal(t, "unknown", discount.Kind(12).String())
}
