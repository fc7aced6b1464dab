// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mediamix-planner/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and display.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// ApproxEqual reports whether two values agree within the given tolerance.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// IsMultipleOf reports whether val is an integer multiple of step within
// rounding tolerance. Step must be positive.
func IsMultipleOf(val, step float64) bool {
	units := math.Round(val / step)
	return math.Abs(units*step-val) <= constants.StepTolerance
}
