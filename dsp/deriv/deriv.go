// Package deriv computes numerical derivatives of sampled curves on
// arbitrary, possibly non-uniform and possibly descending x grids.
package deriv

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("deriv: x and y length mismatch")
	// ErrTooShort is returned for fewer than two samples.
	ErrTooShort = errors.New("deriv: at least two samples required")
	// ErrZeroSpacing is returned when two neighbouring x values are equal.
	ErrZeroSpacing = errors.New("deriv: zero x spacing")
)

// Gradient returns dy/dx at every sample.
//
// Interior samples use the second-order central difference for unequal
// spacing. With hs = x[i]-x[i-1] and hd = x[i+1]-x[i]:
//
//	g[i] = (hs²·y[i+1] + (hd²-hs²)·y[i] - hd²·y[i-1]) / (hs·hd·(hd+hs))
//
// which reduces to (y[i+1]-y[i-1]) / (2h) on a uniform grid. The first and
// last samples use one-sided first differences. x may run in either
// direction; spacing signs are carried through.
func Gradient(x, y []float64) ([]float64, error) {
	if err := validate(x, y); err != nil {
		return nil, err
	}

	n := len(y)
	out := make([]float64, n)

	out[0] = (y[1] - y[0]) / (x[1] - x[0])
	out[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		out[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) / (hs * hd * (hd + hs))
	}

	return out, nil
}

// Differentiate returns the negated gradient -dy/dx. The sign flip turns
// the rising edge of a spectrum plotted against binding energy into a
// positive lobe; callers rely on it.
func Differentiate(x, y []float64) ([]float64, error) {
	g, err := Gradient(x, y)
	if err != nil {
		return nil, err
	}

	for i := range g {
		g[i] = -g[i]
	}

	return g, nil
}

func validate(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(y) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooShort, len(y))
	}
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			return fmt.Errorf("%w: x[%d] == x[%d] == %v", ErrZeroSpacing, i-1, i, x[i])
		}
	}
	return nil
}
