package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xps/dsp/kernel"
)

const (
	// windowScale converts a width into a window length in samples.
	windowScale = 10

	// savgolOrder is the polynomial order of the Savitzky-Golay fit.
	savgolOrder = 3

	// MaxWindow bounds derived window lengths.
	MaxWindow = 1 << 20
)

// WindowLength returns the number of kernel taps the algorithm uses for
// width, applying the algorithm's window rule:
//
//   - Gaussian: 2*floor(4*width+0.5)+1
//   - SavitzkyGolay: floor(width*10), incremented when even; must be >= 4
//   - MovingAverage, Wiener: floor(width*10); must be >= 1
//   - None: 0
func WindowLength(width float64, alg Algorithm) (int, error) {
	if err := validateWidth(width); err != nil {
		return 0, err
	}

	switch alg {
	case Gaussian:
		r := 4*width + 0.5
		if r > MaxWindow {
			return 0, fmt.Errorf("%w: gaussian width %v too large", ErrInvalidParameter, width)
		}
		return 2*kernel.GaussianRadius(width) + 1, nil
	case SavitzkyGolay:
		n, err := scaledWindow(width)
		if err != nil {
			return 0, err
		}
		if n%2 == 0 {
			n++
		}
		if n < savgolOrder+1 {
			return 0, fmt.Errorf("%w: savitzky-golay window %d from width %v must be >= %d",
				ErrInvalidParameter, n, width, savgolOrder+1)
		}
		return n, nil
	case MovingAverage, Wiener:
		n, err := scaledWindow(width)
		if err != nil {
			return 0, err
		}
		if n < 1 {
			return 0, fmt.Errorf("%w: %s window %d from width %v must be >= 1",
				ErrInvalidParameter, alg, n, width)
		}
		return n, nil
	case None:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}
}

func scaledWindow(width float64) (int, error) {
	n := math.Floor(width * windowScale)
	if n > MaxWindow {
		return 0, fmt.Errorf("%w: window from width %v exceeds %d", ErrInvalidParameter, width, MaxWindow)
	}
	return int(n), nil
}

func validateWidth(width float64) error {
	if !(width > 0) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: width must be a positive finite number: %v", ErrInvalidParameter, width)
	}
	return nil
}
