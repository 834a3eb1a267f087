package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-xps/internal/source"
	"github.com/cwbudde/algo-xps/measure/dparam"
)

// Default PNG size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

var (
	dataColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	derivColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	extremaColor = color.Black
)

// PNG writes a PNG plot of s and res to w.
func PNG(w io.Writer, s *source.Sheet, res *dparam.Result) error {
	return PNGSize(w, s, res, DefaultWidth, DefaultHeight)
}

// PNGSize is PNG with an explicit image size.
func PNGSize(w io.Writer, s *source.Sheet, res *dparam.Result, width, height vg.Length) error {
	p, err := newPlot(s, res)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	return nil
}

func newPlot(s *source.Sheet, res *dparam.Result) (*plot.Plot, error) {
	if err := check(s, res); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title(s, res) + "\n" + subtitle(s, res)
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.X.Scale = plot.InvertedScale{Normalizer: p.X.Scale}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	data, err := plotter.NewLine(xys(s.X, s.Y))
	if err != nil {
		return nil, fmt.Errorf("render: data line: %w", err)
	}
	data.Color = dataColor
	data.LineStyle.Width = vg.Points(1.5)

	deriv, err := derivativeLine(s.X, res.NormalizedDerivative)
	if err != nil {
		return nil, err
	}

	marks, err := plotter.NewScatter(plotter.XYs{
		{X: s.X[res.MinIndex], Y: res.NormalizedDerivative[res.MinIndex]},
		{X: s.X[res.MaxIndex], Y: res.NormalizedDerivative[res.MaxIndex]},
	})
	if err != nil {
		return nil, fmt.Errorf("render: extrema: %w", err)
	}
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	marks.GlyphStyle.Radius = vg.Points(4)
	marks.GlyphStyle.Color = extremaColor

	p.Add(data, deriv, marks)
	p.Legend.Add(s.YLabel, data)
	p.Legend.Add("normalized -dy/dx", deriv)
	p.Legend.Add(fmt.Sprintf("extrema (%.2f)", res.Separation), marks)

	return p, nil
}

// derivativeLine returns the dashed normalized derivative line.
func derivativeLine(x, nd []float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys(x, nd))
	if err != nil {
		return nil, fmt.Errorf("render: derivative line: %w", err)
	}
	l.Color = derivColor
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return l, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
