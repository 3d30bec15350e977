package kernel_test

import (
	"testing"

	"pizzashop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "R0.00"},
		{50, "R50.00"},
		{62.5, "R62.50"},
		{110 * 0.9, "R99.00"},
		{-5, "R-5.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.FormatAmount(tc.amount))
		})
	}
}
