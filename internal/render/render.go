// Package render draws a sheet together with its D-parameter result.
//
// Both renderers put the measured curve and the normalized derivative on
// one axis and mark the two extrema. Binding energy is drawn decreasing
// from left to right.
package render

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xps/internal/source"
	"github.com/cwbudde/algo-xps/measure/dparam"
)

// ErrMismatch is returned when the result does not belong to the sheet.
var ErrMismatch = errors.New("render: result does not match sheet")

func check(s *source.Sheet, res *dparam.Result) error {
	if s == nil || res == nil {
		return fmt.Errorf("%w: nil sheet or result", ErrMismatch)
	}
	if len(s.X) != len(s.Y) || len(res.NormalizedDerivative) != len(s.X) {
		return fmt.Errorf("%w: %d x, %d y, %d derivative samples",
			ErrMismatch, len(s.X), len(s.Y), len(res.NormalizedDerivative))
	}
	if res.MinIndex < 0 || res.MinIndex >= len(s.X) || res.MaxIndex < 0 || res.MaxIndex >= len(s.X) {
		return fmt.Errorf("%w: extrema %d, %d out of range", ErrMismatch, res.MinIndex, res.MaxIndex)
	}
	return nil
}

func title(s *source.Sheet, res *dparam.Result) string {
	return fmt.Sprintf("%s  D = %.2f", s.Name, res.Separation)
}

func subtitle(s *source.Sheet, res *dparam.Result) string {
	c := res.Config
	return fmt.Sprintf("%s, %d x %.2f before, %d x %.2f after, center %.2f",
		c.Algorithm.DisplayName(), c.PrePasses, c.SmoothWidth, c.PostPasses, c.DiffWidth, res.Center)
}
