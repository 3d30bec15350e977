package kernel

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "R"

// FormatAmount renders a price as rands with two decimals, e.g. R99.00.
// Rounding happens on the decimal value so float artifacts such as
// 99.00000000000001 never reach the output.
func FormatAmount(amount float64) string {
	return CurrencySymbol + decimal.NewFromFloat(amount).StringFixed(2)
}
