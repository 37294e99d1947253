// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/jfcarrier/mortgage-compare/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundRate rounds a decimal-fraction rate to seven decimals, preserving
// five decimal digits of the equivalent percentage for display fidelity.
func RoundRate(val float64) float64 {
	return math.Round(val*constants.RatePrecision) / constants.RatePrecision
}

// PercentToDecimal converts a percentage value to a decimal fraction
// (e.g. 5.0 -> 0.05).
func PercentToDecimal(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
