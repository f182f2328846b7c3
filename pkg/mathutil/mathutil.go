// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/real-return/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Compound grows principal at rate for the given number of years.
func Compound(principal, rate float64, years int) float64 {
	return principal * math.Pow(1+rate, float64(years))
}

// GrowthPercent calculates the percentage growth of value over principal.
func GrowthPercent(value, principal float64) float64 {
	if principal == 0 {
		return 0
	}
	return ((value / principal) - 1) * constants.PercentageMultiplier
}
