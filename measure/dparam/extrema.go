package dparam

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xps/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// separationPlaces is the number of decimals the separation is rounded to.
const separationPlaces = 2

// Extrema is the outcome of Locate.
type Extrema struct {
	MinIndex int
	MaxIndex int
	// Center is the midpoint of x at the two extrema.
	Center float64
	// Separation is |x[MaxIndex] - x[MinIndex]| rounded to two decimals.
	Separation float64
}

// Locate finds the global minimum and maximum of nd and measures them on
// x. Ties resolve to the first occurrence.
func Locate(nd, x []float64) (Extrema, error) {
	if len(nd) == 0 {
		return Extrema{}, fmt.Errorf("%w: locate needs non-empty input", ErrInvalidInput)
	}
	if len(nd) != len(x) {
		return Extrema{}, fmt.Errorf("%w: derivative has %d samples, x has %d", ErrInvalidInput, len(nd), len(x))
	}

	lo := floats.MinIdx(nd)
	hi := floats.MaxIdx(nd)

	return Extrema{
		MinIndex:   lo,
		MaxIndex:   hi,
		Center:     (x[hi] + x[lo]) / 2,
		Separation: core.RoundTo(math.Abs(x[hi]-x[lo]), separationPlaces),
	}, nil
}
