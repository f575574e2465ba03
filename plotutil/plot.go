// Package plotutil draws simple line plots using gonum/plot.
package plotutil

import (
	"math"

	"github.com/spf13/cast"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type plotLineConf struct {
	XLabel     *string
	YLabel     *string
	PlotWidth  *font.Length
	PlotHeight *font.Length
	LineLabel  *string
}

type plotLineConfFunc func(*plotLineConf)

func WithXLabel(v string) plotLineConfFunc {
	return func(pgc *plotLineConf) {
		pgc.XLabel = &v
	}
}

func WithYLabel(v string) plotLineConfFunc {
	return func(pgc *plotLineConf) {
		pgc.YLabel = &v
	}
}

func WithWidth(v font.Length) plotLineConfFunc {
	return func(pgc *plotLineConf) {
		pgc.PlotWidth = &v
	}
}

func WithHeight(v font.Length) plotLineConfFunc {
	return func(pgc *plotLineConf) {
		pgc.PlotHeight = &v
	}
}

func WithLineLabel(v string) plotLineConfFunc {
	return func(pgc *plotLineConf) {
		pgc.LineLabel = &v
	}
}

// Draw a line plot of the given points and save it to fname. The output
// format is inferred from the file extension, e.g., ".png".
func PlotLine(title string, plots plotter.XYs, fname string, ops ...plotLineConfFunc) error {
	pgc := &plotLineConf{}
	for _, o := range ops {
		o(pgc)
	}

	var (
		xlabel     string = "X"
		ylabel     string = "Y"
		lineLabel  string
		plotWidth  = 10 * vg.Inch
		plotHeight = plotWidth / 2
	)
	if pgc.XLabel != nil {
		xlabel = *pgc.XLabel
	}
	if pgc.YLabel != nil {
		ylabel = *pgc.YLabel
	}
	if pgc.LineLabel != nil {
		lineLabel = *pgc.LineLabel
	}
	if pgc.PlotWidth != nil {
		plotWidth = *pgc.PlotWidth
	}
	if pgc.PlotHeight != nil {
		plotHeight = *pgc.PlotHeight
	}

	p := plot.New()
	p.Title.Text = "\n" + title
	p.Title.Padding = 0.1 * vg.Inch
	p.X.Label.Text = "\n" + xlabel + "\n"
	p.X.Label.Padding = 0.1 * vg.Inch
	p.Y.Label.Text = "\n" + ylabel + "\n"
	p.Y.Label.Padding = 0.1 * vg.Inch
	p.X.Max = float64(len(plots))

	if err := drawLine(p, plots, 1, lineLabel); err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, fname)
}

func drawLine(p *plot.Plot, dat plotter.XYs, color int, lineLabel string) error {
	if len(dat) < 1 {
		return nil
	}

	// find min, max
	var min, max float64 = math.MaxFloat64, -math.MaxFloat64
	var mini, maxi int
	for i, xy := range dat {
		if xy.Y < min {
			mini = i
			min = xy.Y
		}
		if xy.Y >= max {
			maxi = i
			max = xy.Y
		}
	}

	line, err := plotter.NewLine(dat)
	if err != nil {
		return err
	}
	line.LineStyle.Color = plotutil.Color(color)
	p.Add(line)

	if min < max {
		minLabels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: float64(mini), Y: min}},
			Labels: []string{cast.ToString(min)},
		})
		if err != nil {
			return err
		}
		p.Add(minLabels)
	}

	maxLabels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: float64(maxi), Y: max}},
		Labels: []string{cast.ToString(max)},
	})
	if err != nil {
		return err
	}
	p.Add(maxLabels)

	if lineLabel != "" {
		lineLabels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: 1, Y: dat[0].Y}},
			Labels: []string{lineLabel},
		})
		if err != nil {
			return err
		}
		p.Add(lineLabels)
	}
	return nil
}
