package pricing

import "github.com/shopspring/decimal"

// FormatPrice renders an amount with exactly two decimals, rounding half away from zero.
func FormatPrice(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
