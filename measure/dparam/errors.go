package dparam

import "errors"

var (
	// ErrInvalidInput is returned for mismatched x/y lengths, fewer than two
	// samples, non-finite values, or repeated x values.
	ErrInvalidInput = errors.New("dparam: invalid input")
	// ErrInvalidParameter is returned for a non-positive width, a negative
	// pass count, or a derived window below the algorithm's minimum.
	ErrInvalidParameter = errors.New("dparam: invalid parameter")
	// ErrUnsupportedAlgorithm is returned for an algorithm outside the known set.
	ErrUnsupportedAlgorithm = errors.New("dparam: unsupported algorithm")
	// ErrDegenerateRange is returned when the derivative is flat, so it
	// cannot be mapped onto the data range, or when the data range itself
	// is zero (a constant y curve).
	ErrDegenerateRange = errors.New("dparam: degenerate derivative range")
)
