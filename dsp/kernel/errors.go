package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a kernel length is not usable.
	ErrInvalidLength = errors.New("kernel: invalid length")
	// ErrInvalidSigma is returned for a non-positive or non-finite Gaussian sigma.
	ErrInvalidSigma = errors.New("kernel: invalid sigma")
	// ErrInvalidOrder is returned when a polynomial order does not fit the window.
	ErrInvalidOrder = errors.New("kernel: invalid polynomial order")
	// ErrSingularFit is returned when the least-squares system cannot be factorized.
	ErrSingularFit = errors.New("kernel: singular least-squares fit")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: must be > 0: %d", ErrInvalidLength, size)
	}
	return nil
}

func validateSavGol(window, order int) error {
	if window <= 0 || window%2 == 0 {
		return fmt.Errorf("%w: savitzky-golay window must be odd and > 0: %d", ErrInvalidLength, window)
	}
	if order < 0 || order >= window {
		return fmt.Errorf("%w: order %d must be in [0, %d)", ErrInvalidOrder, order, window)
	}
	return nil
}
