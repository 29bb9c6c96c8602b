package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	colorSection = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorFill    = color.RGBA{R: 0, G: 0, B: 255, A: 51}
	colorXAxis   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorYAxis   = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorEllipse = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// ExportPlot draws the section, its principal axes and inertia ellipse and
// saves the image. The format follows the file extension (png, svg, pdf);
// any other extension gets ".png" appended.
func ExportPlot(d Data, filename string) error {
	p, err := newPlot(d)
	if err != nil {
		return err
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating diagram directory: %w", err)
		}
	}

	// Square canvas, equal data spans.
	size := 7 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}

func newPlot(d Data) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = fmt.Sprintf("X [%s]", d.Unit)
	p.Y.Label.Text = fmt.Sprintf("Y [%s]", d.Unit)
	p.Add(plotter.NewGrid())

	outline := toXYs(d.Polygon)

	fill, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	fill.Color = colorFill
	fill.LineStyle.Width = 0
	p.Add(fill)

	line, points, err := plotter.NewLinePoints(outline)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = colorSection
	points.GlyphStyle.Color = colorSection
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	p.Legend.Add("Closed polygon", line, points)

	axes := []struct {
		vec   r2.Vec
		color color.Color
		name  string
	}{
		{d.XAxis, colorXAxis, "Axis x_c"},
		{d.YAxis, colorYAxis, "Axis y_c"},
	}
	for _, a := range axes {
		arrow, err := plotter.NewLine(arrowXYs(d.Centroid, a.vec))
		if err != nil {
			return nil, err
		}
		arrow.LineStyle.Width = vg.Points(2)
		arrow.LineStyle.Color = a.color
		p.Add(arrow)
		p.Legend.Add(a.name, arrow)
	}

	ellipse, err := plotter.NewLine(toXYs(d.Ellipse))
	if err != nil {
		return nil, err
	}
	ellipse.LineStyle.Width = vg.Points(1.5)
	ellipse.LineStyle.Color = colorEllipse
	p.Add(ellipse)
	p.Legend.Add("Inertia ellipse", ellipse)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: d.Centroid.X, Y: d.Centroid.Y}})
	if err != nil {
		return nil, err
	}
	centroid.GlyphStyle.Color = colorEllipse
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(centroid)
	p.Legend.Add("Centroid", centroid)

	box := d.squareExtent(0.1)
	p.X.Min, p.X.Max = box.Min.X, box.Max.X
	p.Y.Min, p.Y.Max = box.Min.Y, box.Max.Y
	p.Legend.Top = true

	return p, nil
}

func toXYs(vs []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(vs))
	for i, v := range vs {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

// arrowXYs traces a shaft from origin along vec followed by a two-barbed head.
func arrowXYs(origin, vec r2.Vec) plotter.XYs {
	tip := r2.Add(origin, vec)
	length := r2.Norm(vec)
	if length == 0 {
		return plotter.XYs{{X: origin.X, Y: origin.Y}, {X: tip.X, Y: tip.Y}}
	}

	const barbAngle = 25 * math.Pi / 180
	back := r2.Scale(-0.12, vec)
	barb := func(angle float64) r2.Vec {
		cos, sin := math.Cos(angle), math.Sin(angle)
		return r2.Add(tip, r2.Vec{X: back.X*cos - back.Y*sin, Y: back.X*sin + back.Y*cos})
	}
	right, left := barb(barbAngle), barb(-barbAngle)

	return plotter.XYs{
		{X: origin.X, Y: origin.Y},
		{X: tip.X, Y: tip.Y},
		{X: left.X, Y: left.Y},
		{X: tip.X, Y: tip.Y},
		{X: right.X, Y: right.Y},
	}
}
