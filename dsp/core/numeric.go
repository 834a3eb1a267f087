// Package core holds small numeric helpers shared by the dsp and measure
// packages.
package core

import (
	"math"
	"strconv"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite reports whether every element of s is finite. It returns the
// index of the first offending element, or -1.
func AllFinite(s []float64) (bool, int) {
	for i, v := range s {
		if !IsFinite(v) {
			return false, i
		}
	}

	return true, -1
}

// RoundTo rounds x to the given number of decimal places.
//
// Rounding is decided on the exact binary value of x, with exact ties going
// to the even digit, so RoundTo(2.675, 2) is 2.67 (2.675 is stored just
// below the tie) and RoundTo(0.125, 2) is 0.12. Non-finite x is returned
// unchanged.
func RoundTo(x float64, places int) float64 {
	if !IsFinite(x) || places < 0 {
		return x
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return r
}
