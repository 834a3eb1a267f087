package dparam

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xps/dsp/smooth"
)

// Config holds the pipeline parameters. One algorithm serves both
// smoothing stages.
type Config struct {
	// SmoothWidth is the smoothing width applied to the data before
	// differentiation.
	SmoothWidth float64
	// PrePasses is how many times the data is smoothed.
	PrePasses int
	// DiffWidth is the smoothing width applied to the derivative.
	DiffWidth float64
	// PostPasses is how many times the derivative is smoothed.
	PostPasses int
	Algorithm  smooth.Algorithm
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults of the interactive tool: Gaussian
// smoothing, two passes at width 7 before and one pass at width 1 after
// differentiation.
func DefaultConfig() Config {
	return Config{
		SmoothWidth: 7.0,
		PrePasses:   2,
		DiffWidth:   1.0,
		PostPasses:  1,
		Algorithm:   smooth.Gaussian,
	}
}

// WithSmoothWidth sets the pre-differentiation smoothing width.
func WithSmoothWidth(width float64) Option {
	return func(cfg *Config) { cfg.SmoothWidth = width }
}

// WithPrePasses sets the number of pre-differentiation passes.
func WithPrePasses(n int) Option {
	return func(cfg *Config) { cfg.PrePasses = n }
}

// WithDiffWidth sets the post-differentiation smoothing width.
func WithDiffWidth(width float64) Option {
	return func(cfg *Config) { cfg.DiffWidth = width }
}

// WithPostPasses sets the number of post-differentiation passes.
func WithPostPasses(n int) Option {
	return func(cfg *Config) { cfg.PostPasses = n }
}

// WithAlgorithm sets the smoothing algorithm.
func WithAlgorithm(alg smooth.Algorithm) Option {
	return func(cfg *Config) { cfg.Algorithm = alg }
}

// NewConfig applies zero or more options to the default config. Options
// do not validate; Run and Validate do.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate checks every parameter, including the window lengths derived
// for the smoothing stages that will actually run.
func (c Config) Validate() error {
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, c.Algorithm)
	}

	if err := checkWidth("smooth width", c.SmoothWidth); err != nil {
		return err
	}
	if err := checkWidth("diff width", c.DiffWidth); err != nil {
		return err
	}
	if c.PrePasses < 0 {
		return fmt.Errorf("%w: pre passes must be >= 0: %d", ErrInvalidParameter, c.PrePasses)
	}
	if c.PostPasses < 0 {
		return fmt.Errorf("%w: post passes must be >= 0: %d", ErrInvalidParameter, c.PostPasses)
	}

	if c.PrePasses > 0 {
		if _, err := smooth.WindowLength(c.SmoothWidth, c.Algorithm); err != nil {
			return fmt.Errorf("%w: pre stage: %w", ErrInvalidParameter, err)
		}
	}
	if c.PostPasses > 0 {
		if _, err := smooth.WindowLength(c.DiffWidth, c.Algorithm); err != nil {
			return fmt.Errorf("%w: post stage: %w", ErrInvalidParameter, err)
		}
	}

	return nil
}

func checkWidth(name string, w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %s must be a positive finite number: %v", ErrInvalidParameter, name, w)
	}
	return nil
}
