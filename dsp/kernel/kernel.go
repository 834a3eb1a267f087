// Package kernel builds the finite impulse responses used by the smoothers
// in dsp/smooth.
//
// Every kernel is symmetric and odd-length unless stated otherwise, so
// convolution and correlation with it are the same operation and the
// centre tap sits at index len/2.
package kernel

import (
	"fmt"
	"math"
)

// GaussianTruncate is the number of standard deviations kept on each side
// of a Gaussian kernel.
const GaussianTruncate = 4.0

// GaussianRadius returns the half-width of the Gaussian kernel for sigma:
// floor(GaussianTruncate*sigma + 0.5).
func GaussianRadius(sigma float64) int {
	return int(GaussianTruncate*sigma + 0.5)
}

// Gaussian returns a unit-sum sampled Gaussian with standard deviation sigma
// (in samples). The kernel has 2*GaussianRadius(sigma)+1 taps.
func Gaussian(sigma float64) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}

	radius := GaussianRadius(sigma)
	out := make([]float64, 2*radius+1)

	sum := 0.0
	for i := range out {
		d := float64(i-radius) / sigma
		out[i] = math.Exp(-0.5 * d * d)
		sum += out[i]
	}

	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

// Boxcar returns a uniform kernel of n taps, each 1/n. Even n is allowed.
func Boxcar(n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	w := 1 / float64(n)
	for i := range out {
		out[i] = w
	}

	return out, nil
}
