package smooth

import "errors"

var (
	// ErrInvalidParameter is returned for a non-positive width, a negative
	// pass count, or a derived window that is too short for the algorithm.
	ErrInvalidParameter = errors.New("smooth: invalid parameter")
	// ErrUnsupportedAlgorithm is returned for an algorithm outside the known set.
	ErrUnsupportedAlgorithm = errors.New("smooth: unsupported algorithm")
)
