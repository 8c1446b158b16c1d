package mgplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrEmpty indicates there is nothing to plot.
	ErrEmpty = errors.New("mgplot: empty series")
	// ErrLength indicates a series whose length differs from the abscissa.
	ErrLength = errors.New("mgplot: series length mismatch")
)

// Figure size shared by all plots.
const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

// palette cycles through series colors.
var palette = []color.Color{
	color.RGBA{A: 255},                 // black
	color.RGBA{B: 255, A: 255},         // blue
	color.RGBA{R: 200, A: 255},         // red
	color.RGBA{G: 140, A: 255},         // green
	color.RGBA{R: 160, B: 160, A: 255}, // purple
}

// Series is one named line of a profile plot.
type Series struct {
	Name   string
	Values []float64
	Dashed bool
}

// History plots one norm per cycle on a log10 y-axis and saves it to path.
// Entries a log axis cannot draw are clamped: +Inf to the largest finite
// entry of hist, non-positive or NaN entries to the smallest positive one.
func History(hist []float64, path string) error {
	if len(hist) == 0 {
		return ErrEmpty
	}

	pts := logPoints(hist)

	p := plot.New()
	p.Title.Text = "FMG convergence"
	p.X.Label.Text = "cycle"
	p.Y.Label.Text = "norm"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("mgplot: history line: %w", err)
	}
	line.Color = palette[0]
	line.Width = vg.Points(2)
	p.Add(line)
	if p.Y.Min == p.Y.Max {
		// A flat history would be padded by ±1, which a log axis rejects.
		p.Y.Min /= 10
		p.Y.Max *= 10
	}
	p.Legend.Add("res", line)
	p.Legend.Top = true

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("mgplot: save history: %w", err)
	}

	return nil
}

// Profile plots every series against x and saves it to path.
func Profile(x []float64, series []Series, path string) error {
	if len(x) == 0 || len(series) == 0 {
		return ErrEmpty
	}

	p := plot.New()
	p.Title.Text = "field"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	for k, s := range series {
		if len(s.Values) != len(x) {
			return fmt.Errorf("%q: %w", s.Name, ErrLength)
		}
		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i] = plotter.XY{X: x[i], Y: s.Values[i]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("mgplot: profile line %q: %w", s.Name, err)
		}
		line.Color = palette[k%len(palette)]
		line.Width = vg.Points(1)
		if s.Dashed {
			line.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		}
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("mgplot: save profile: %w", err)
	}

	return nil
}

// logPoints maps hist to (cycle, norm) points drawable on a log axis.
func logPoints(hist []float64) plotter.XYs {
	floor := smallestPositive(hist)
	ceil := largestFinite(hist, floor)
	pts := make(plotter.XYs, len(hist))
	for i, h := range hist {
		switch {
		case math.IsInf(h, 1):
			h = ceil
		case !(h > 0):
			h = floor
		}
		pts[i] = plotter.XY{X: float64(i), Y: h}
	}

	return pts
}

// largestFinite returns the greatest finite entry > 0, or floor if none.
func largestFinite(v []float64, floor float64) float64 {
	m := floor
	for _, x := range v {
		if x > m && !math.IsInf(x, 1) {
			m = x
		}
	}

	return m
}

// smallestPositive returns the least finite entry > 0, or 1e-300 if none.
func smallestPositive(v []float64) float64 {
	m := math.Inf(1)
	for _, x := range v {
		if x > 0 && x < m {
			m = x
		}
	}
	if math.IsInf(m, 1) {
		return 1e-300
	}

	return m
}
