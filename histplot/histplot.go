// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package histplot renders a fiber history, a [Time, Pos] tensor of membrane
potentials, as a heatmap with time on the X axis, position along the fiber
on the Y axis, and a labeled color bar, using a diverging cool-warm palette.

Diverged runs still render: the color scale spans the finite values only,
+Inf / -Inf cells take the top / bottom color, and NaN cells stay blank.
*/
package histplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/oscpair/fiber"
	"github.com/emer/oscpair/osc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrEmpty means the history has fewer than 2 rows or columns.
var ErrEmpty = errors.New("histplot: history too small to plot")

// Params are the image parameters.
type Params struct {

	// total image width, including the color bar
	Width vg.Length `def:"8in"`

	// image height
	Height vg.Length `def:"5in"`

	// width of the color bar panel on the right
	BarWidth vg.Length `def:"1.2in"`

	// number of palette colors
	Colors int `def:"255"`

	XLabel   string
	YLabel   string
	BarLabel string
}

func (pp *Params) Defaults() {
	pp.Width = 8 * vg.Inch
	pp.Height = 5 * vg.Inch
	pp.BarWidth = 1.2 * vg.Inch
	pp.Colors = 255
	pp.XLabel = "Time (ms)"
	pp.YLabel = "Position along fiber (cm)"
	pp.BarLabel = "Membrane Potential (mV)"
}

// grid maps a [Time, Pos] history onto plotter.GridXYZ: columns are time
// steps of width dt, rows are positions of height dx, both starting at 0.
// Infinite values are clamped to the color range; NaN cells are left blank.
type grid struct {
	hist   *etensor.Float64
	dt, dx float64
	rng    minmax.F64
}

func (g *grid) Dims() (c, r int) {
	return g.hist.Dim(0), g.hist.Dim(1)
}

func (g *grid) Z(c, r int) float64 {
	v := g.hist.Value([]int{c, r})
	switch {
	case math.IsInf(v, 1):
		return g.rng.Max
	case math.IsInf(v, -1):
		return g.rng.Min
	}
	return v
}

func (g *grid) X(c int) float64 {
	return (float64(c) + 0.5) * g.dt
}

func (g *grid) Y(r int) float64 {
	return (float64(r) + 0.5) * g.dx
}

// colorRange returns the range of the finite values of the history for
// the color scale, widened by 1 mV each way if all values are equal.
// A history with no finite values at all gets [-1, 1].
func colorRange(hist *etensor.Float64) minmax.F64 {
	rng := osc.HistRange(hist)
	if rng.Max < rng.Min {
		rng.Set(0, 0)
	}
	if rng.Max == rng.Min {
		rng.Min--
		rng.Max++
	}
	return rng
}

// Plots returns the heatmap plot and its color bar plot for given history.
// pr supplies the time step and fiber length for the axes.
func (pp *Params) Plots(hist *etensor.Float64, title string, pr *fiber.Params) (*plot.Plot, *plot.Plot, error) {
	if hist.Dim(0) < 2 || hist.Dim(1) < 2 {
		return nil, nil, fmt.Errorf("%w: %d x %d", ErrEmpty, hist.Dim(0), hist.Dim(1))
	}
	rng := colorRange(hist)
	cm := moreland.SmoothBlueRed()
	cm.SetMax(rng.Max)
	cm.SetMin(rng.Min)

	g := &grid{hist: hist, dt: pr.Dt, dx: pr.L / float64(hist.Dim(1)), rng: rng}
	hm := plotter.NewHeatMap(g, cm.Palette(pp.Colors))
	hm.Min, hm.Max = rng.Min, rng.Max

	hp := plot.New()
	hp.Title.Text = title
	hp.X.Label.Text = pp.XLabel
	hp.Y.Label.Text = pp.YLabel
	hp.Add(hm)
	hp.X.Min, hp.X.Max = 0, float64(hist.Dim(0))*pr.Dt
	hp.Y.Min, hp.Y.Max = 0, pr.L

	bp := plot.New()
	bp.HideX()
	bp.Y.Label.Text = pp.BarLabel
	bp.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: pp.Colors})
	return hp, bp, nil
}

// Render draws the heatmap and color bar side by side into a new image canvas.
func (pp *Params) Render(hist *etensor.Float64, title string, pr *fiber.Params) (*vgimg.Canvas, error) {
	hp, bp, err := pp.Plots(hist, title, pr)
	if err != nil {
		return nil, err
	}
	img := vgimg.New(pp.Width, pp.Height)
	dc := draw.New(img)
	hp.Draw(draw.Crop(dc, 0, -pp.BarWidth, 0, 0))
	bp.Draw(draw.Crop(dc, pp.Width-pp.BarWidth, 0, 0, 0))
	return img, nil
}

// WritePNG renders the history and writes it to w as PNG.
func (pp *Params) WritePNG(w io.Writer, hist *etensor.Float64, title string, pr *fiber.Params) error {
	img, err := pp.Render(hist, title, pr)
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// SavePNG renders the history into the named PNG file.
func (pp *Params) SavePNG(fname string, hist *etensor.Float64, title string, pr *fiber.Params) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := pp.WritePNG(f, hist, title, pr); err != nil {
		f.Close()
		return fmt.Errorf("histplot: %s: %w", fname, err)
	}
	return f.Close()
}
