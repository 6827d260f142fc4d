package utils

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary value to 2 decimal places, half up. Every value
// that crosses a persistence or serialization boundary goes through here so
// stored money is exact to the cent.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Money2 formats a monetary value with a fixed 2-digit scale, e.g. "150.00".
func Money2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
