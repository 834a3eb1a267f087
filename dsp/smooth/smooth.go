package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-xps/dsp/conv"
	"github.com/cwbudde/algo-xps/dsp/kernel"
)

// Smoother applies one algorithm at one width. It is immutable once built
// and safe for concurrent use.
type Smoother struct {
	alg    Algorithm
	width  float64
	window int
	kernel []float64 // nil for Wiener and None
}

// New validates width and alg and precomputes the kernel.
func New(width float64, alg Algorithm) (*Smoother, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}

	window, err := WindowLength(width, alg)
	if err != nil {
		return nil, err
	}

	s := &Smoother{alg: alg, width: width, window: window}

	switch alg {
	case Gaussian:
		s.kernel, err = kernel.Gaussian(width)
	case SavitzkyGolay:
		s.kernel, err = kernel.SavitzkyGolay(window, savgolOrder)
	case MovingAverage:
		s.kernel, err = kernel.Boxcar(window)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	return s, nil
}

// Algorithm returns the smoother's algorithm.
func (s *Smoother) Algorithm() Algorithm { return s.alg }

// Width returns the configured width.
func (s *Smoother) Width() float64 { return s.width }

// Window returns the number of taps used, or 0 for None.
func (s *Smoother) Window() int { return s.window }

// Kernel returns a copy of the convolution kernel, or nil for Wiener and None.
func (s *Smoother) Kernel() []float64 {
	if s.kernel == nil {
		return nil
	}
	return append([]float64(nil), s.kernel...)
}

// Apply smooths data once. The result always has len(data) samples.
// For None, data itself is returned.
func (s *Smoother) Apply(data []float64) ([]float64, error) {
	if s.alg == None {
		return data, nil
	}

	if len(data) == 0 {
		return []float64{}, nil
	}

	switch s.alg {
	case Gaussian, SavitzkyGolay, MovingAverage:
		return conv.Same(data, s.kernel)
	case Wiener:
		return wiener(data, s.window)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(s.alg))
	}
}

// Passes applies the smoother n times, each pass consuming the previous
// pass's output. n == 0 returns data unchanged.
func (s *Smoother) Passes(data []float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: pass count must be >= 0: %d", ErrInvalidParameter, n)
	}

	out := data
	for i := 0; i < n; i++ {
		next, err := s.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("smooth: pass %d of %d: %w", i+1, n, err)
		}
		out = next
	}

	return out, nil
}

// Smooth applies alg at width to data once.
func Smooth(data []float64, width float64, alg Algorithm) ([]float64, error) {
	s, err := New(width, alg)
	if err != nil {
		return nil, err
	}
	return s.Apply(data)
}

// Passes applies alg at width to data n times.
func Passes(data []float64, width float64, alg Algorithm, n int) ([]float64, error) {
	s, err := New(width, alg)
	if err != nil {
		return nil, err
	}
	return s.Passes(data, n)
}
