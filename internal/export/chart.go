// internal/export/chart.go
// Package: export
package export

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/knapbench/internal/aggregate"
)

var (
	simpleColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	probColor      = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	optimalColor   = color.RGBA{G: 128, A: 255}
	speedupColor   = color.RGBA{R: 128, B: 128, A: 255}
	referenceColor = color.Gray{Y: 128}
)

// optimalityMax leaves headroom above 100% so caps stay visible.
const optimalityMax = 105

// parityLabel is the legend entry for the y=1 speedup reference.
const parityLabel = "Speedup = 1 (same time)"

// errorPoints pairs group means with symmetric ±std error bars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// seriesPoints collects one metric across groups. Groups with no valid
// observation are skipped; an undefined std draws a zero-height bar.
func seriesPoints(t *aggregate.Table, pick func(aggregate.Row) aggregate.Stat) errorPoints {
	var pts errorPoints
	for _, r := range t.Rows {
		s := pick(r)
		if !s.HasMean() {
			continue
		}
		var std float64
		if s.HasStd() {
			std = s.Std
		}
		pts.XYs = append(pts.XYs, plotter.XY{X: float64(r.X), Y: s.Mean})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{Low: std, High: std})
	}
	return pts
}

type series struct {
	label  string
	points errorPoints
	color  color.Color
	shape  draw.GlyphDrawer
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.Add(plotter.NewGrid())
	return p
}

// addSeries draws a line through the means with markers and error bars.
func addSeries(p *plot.Plot, s series) error {
	if len(s.points.XYs) == 0 {
		return nil
	}
	line, points, err := plotter.NewLinePoints(s.points.XYs)
	if err != nil {
		return err
	}
	line.Color = s.color
	points.Color = s.color
	points.Shape = s.shape

	bars, err := plotter.NewYErrorBars(s.points)
	if err != nil {
		return err
	}
	bars.Color = s.color
	bars.CapWidth = vg.Points(10)

	p.Add(line, points, bars)
	if s.label != "" {
		p.Legend.Add(s.label, line, points)
	}
	return nil
}

// chartSet holds the three plots built for one table, plus the y=1 line
// drawn on the speedup plot.
type chartSet struct {
	time       *plot.Plot
	optimality *plot.Plot
	speedup    *plot.Plot
	parity     *plotter.Function
}

// buildCharts assembles the time, optimality and speedup plots for t.
func buildCharts(t *aggregate.Table, prefix string) (*chartSet, error) {
	xLabel := AxisLabel(t.XColumn)

	timePlot := newPlot(
		fmt.Sprintf("%s - Mean Execution Time (with Std Dev) vs. %s", prefix, xLabel),
		xLabel, "Mean Execution Time (s)")
	for _, s := range []series{
		{
			label:  "Simple Solver (mean)",
			points: seriesPoints(t, func(r aggregate.Row) aggregate.Stat { return r.AvgSimpleTime }),
			color:  simpleColor,
			shape:  draw.CircleGlyph{},
		},
		{
			label:  "Prob Solver (mean)",
			points: seriesPoints(t, func(r aggregate.Row) aggregate.Stat { return r.AvgProbTime }),
			color:  probColor,
			shape:  draw.CrossGlyph{},
		},
	} {
		if err := addSeries(timePlot, s); err != nil {
			return nil, fmt.Errorf("time chart: %w", err)
		}
	}

	optimalPlot := newPlot(
		fmt.Sprintf("%s - Mean Prob Solver Optimality (with Std Dev) vs. %s", prefix, xLabel),
		xLabel, "Mean Optimality (%)")
	if err := addSeries(optimalPlot, series{
		points: seriesPoints(t, func(r aggregate.Row) aggregate.Stat { return r.OptimalPercentage }),
		color:  optimalColor,
		shape:  draw.CircleGlyph{},
	}); err != nil {
		return nil, fmt.Errorf("optimality chart: %w", err)
	}
	optimalPlot.Y.Min = 0
	optimalPlot.Y.Max = optimalityMax

	speedupPlot := newPlot(
		fmt.Sprintf("%s - Mean Speedup (with Std Dev) vs. %s", prefix, xLabel),
		xLabel, "Mean Speedup (Simple Time / Prob Time)")
	if err := addSeries(speedupPlot, series{
		points: seriesPoints(t, func(r aggregate.Row) aggregate.Stat { return r.AvgTimeRatio }),
		color:  speedupColor,
		shape:  draw.CircleGlyph{},
	}); err != nil {
		return nil, fmt.Errorf("speedup chart: %w", err)
	}

	return &chartSet{
		time:       timePlot,
		optimality: optimalPlot,
		speedup:    speedupPlot,
		parity:     addParityLine(speedupPlot),
	}, nil
}

// WriteCharts renders the execution time, optimality and speedup charts for
// t and returns the written paths in that order.
func (e *Exporter) WriteCharts(t *aggregate.Table, prefix string) ([]string, error) {
	set, err := buildCharts(t, prefix)
	if err != nil {
		return nil, err
	}
	timeName, optimalName, speedupName := ChartFileNames(prefix, t.XColumn)

	var written []string
	for _, c := range []struct {
		name string
		plot *plot.Plot
	}{
		{timeName, set.time},
		{optimalName, set.optimality},
		{speedupName, set.speedup},
	} {
		path, err := e.savePlot(c.plot, c.name)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// addParityLine draws the dashed y=1 reference where both solvers take the
// same time, widening the y range so it is always visible.
func addParityLine(p *plot.Plot) *plotter.Function {
	parity := plotter.NewFunction(func(float64) float64 { return 1 })
	parity.Color = referenceColor
	parity.Width = vg.Points(0.8)
	parity.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(parity)
	p.Legend.Add(parityLabel, parity)

	p.Y.Min = math.Min(p.Y.Min, 1)
	p.Y.Max = math.Max(p.Y.Max, 1)
	return parity
}

func (e *Exporter) savePlot(p *plot.Plot, name string) (string, error) {
	path, err := e.ensureDir(name)
	if err != nil {
		return "", err
	}
	w := vg.Length(e.ChartWidth) * vg.Inch
	h := vg.Length(e.ChartHeight) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	e.Logger.Debug("Wrote chart", slog.String("path", path))
	return path, nil
}
