package calc

import "math"

// Positive reports whether x is a finite number above zero. NaN and +Inf
// are rejected.
func Positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
