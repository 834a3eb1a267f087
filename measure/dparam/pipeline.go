package dparam

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xps/dsp/core"
	"github.com/cwbudde/algo-xps/dsp/deriv"
	"github.com/cwbudde/algo-xps/dsp/smooth"
)

// Result is one D-parameter measurement.
type Result struct {
	// NormalizedDerivative has one sample per input sample and spans
	// [min(y), max(y)].
	NormalizedDerivative []float64
	Extrema
	// Config is the configuration the result was computed with.
	Config Config
}

// Run measures the D-parameter of the curve (x, y).
//
// x may be ascending, descending or non-uniform but must not repeat a
// value. Neither x nor y is modified. The returned result shares no memory
// with the inputs.
func Run(x, y []float64, cfg Config) (*Result, error) {
	if err := validateSignal(x, y); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	smoothed, err := passes(y, cfg.SmoothWidth, cfg.Algorithm, cfg.PrePasses)
	if err != nil {
		return nil, err
	}

	d, err := deriv.Differentiate(x, smoothed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	d, err = passes(d, cfg.DiffWidth, cfg.Algorithm, cfg.PostPasses)
	if err != nil {
		return nil, err
	}

	nd, err := Normalize(d, y)
	if err != nil {
		return nil, err
	}
	if ok, i := core.AllFinite(nd); !ok {
		return nil, fmt.Errorf("%w: non-finite derivative at index %d", ErrDegenerateRange, i)
	}

	ext, err := Locate(nd, x)
	if err != nil {
		return nil, err
	}

	return &Result{NormalizedDerivative: nd, Extrema: ext, Config: cfg}, nil
}

// passes smooths data n times. A stage with no passes never builds its
// smoother, so its width is not turned into a window.
func passes(data []float64, width float64, alg smooth.Algorithm, n int) ([]float64, error) {
	if n == 0 {
		return data, nil
	}

	out, err := smooth.Passes(data, width, alg, n)
	if err != nil {
		return nil, wrapSmooth(err)
	}
	return out, nil
}

func wrapSmooth(err error) error {
	switch {
	case errors.Is(err, smooth.ErrUnsupportedAlgorithm):
		return fmt.Errorf("%w: %w", ErrUnsupportedAlgorithm, err)
	case errors.Is(err, smooth.ErrInvalidParameter):
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	default:
		return err
	}
}

func validateSignal(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: x has %d samples, y has %d", ErrInvalidInput, len(x), len(y))
	}
	if len(y) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, len(y))
	}
	if ok, i := core.AllFinite(x); !ok {
		return fmt.Errorf("%w: x[%d] is %v", ErrInvalidInput, i, x[i])
	}
	if ok, i := core.AllFinite(y); !ok {
		return fmt.Errorf("%w: y[%d] is %v", ErrInvalidInput, i, y[i])
	}
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			return fmt.Errorf("%w: repeated x value %v at index %d", ErrInvalidInput, x[i], i)
		}
	}
	return nil
}
