package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-xps/internal/source"
	"github.com/cwbudde/algo-xps/measure/dparam"
)

// HTML writes an interactive ECharts page of s and res to w.
func HTML(w io.Writer, s *source.Sheet, res *dparam.Result) error {
	if err := check(s, res); err != nil {
		return err
	}

	data := make([]opts.LineData, len(s.X))
	deriv := make([]opts.LineData, len(s.X))
	for i, x := range s.X {
		data[i] = opts.LineData{Value: []interface{}{x, s.Y[i]}}
		deriv[i] = opts.LineData{Value: []interface{}{x, res.NormalizedDerivative[i]}}
	}

	marks := []opts.LineData{
		{Name: "min", Value: []interface{}{s.X[res.MinIndex], res.NormalizedDerivative[res.MinIndex]}, Symbol: "circle", SymbolSize: 10},
		{Name: "max", Value: []interface{}{s.X[res.MaxIndex], res.NormalizedDerivative[res.MaxIndex]}, Symbol: "circle", SymbolSize: 10},
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "D-parameter " + s.Name, Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title(s, res), Subtitle: subtitle(s, res)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: s.XLabel, NameLocation: "middle", NameGap: 25, Inverse: opts.Bool(true), Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: s.YLabel, NameLocation: "middle", NameGap: 50, Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	line.AddSeries(s.YLabel, data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})).
		AddSeries("normalized -dy/dx", deriv, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})).
		AddSeries("extrema", marks, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	return nil
}
