package dparam

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Normalize maps d linearly onto [min(ref), max(ref)], so the derivative
// can be drawn on the same axis as the data it came from. The minimum of d
// lands on min(ref) and the maximum on max(ref).
//
// A flat d (max == min) returns ErrDegenerateRange. So does a flat ref,
// since zero-padded smoothing leaves a constant curve with a non-flat
// derivative. Empty d or ref returns ErrInvalidInput.
func Normalize(d, ref []float64) ([]float64, error) {
	if len(d) == 0 || len(ref) == 0 {
		return nil, fmt.Errorf("%w: normalize needs non-empty input", ErrInvalidInput)
	}

	dMin, dMax := floats.Min(d), floats.Max(d)
	span := dMax - dMin
	if !(span > 0) {
		return nil, fmt.Errorf("%w: derivative spans [%v, %v]", ErrDegenerateRange, dMin, dMax)
	}

	rMin, rMax := floats.Min(ref), floats.Max(ref)
	if !(rMax > rMin) {
		return nil, fmt.Errorf("%w: reference spans [%v, %v]", ErrDegenerateRange, rMin, rMax)
	}
	scale := (rMax - rMin) / span

	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = (v-dMin)*scale + rMin
	}

	return out, nil
}
