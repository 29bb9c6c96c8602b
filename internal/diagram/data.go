package diagram

import (
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"gonum.org/v1/gonum/spatial/r2"
)

// Data holds everything needed to draw a section with its principal axes
// and inertia ellipse.
type Data struct {
	Title string
	Unit  string

	Polygon  []r2.Vec // closed ring
	Centroid r2.Vec

	// Principal axis vectors, drawn from the centroid.
	XAxis r2.Vec
	YAxis r2.Vec

	Ellipse []r2.Vec
}

// FromResult builds drawing data from a calculation. A non-positive
// axisLength falls back to inertia.AxisLength of the polygon, and a
// non-positive samples count to inertia.DefaultEllipseSamples.
func FromResult(r *inertia.Result, axisLength float64, samples int) Data {
	ring := r.Polygon()
	if axisLength <= 0 {
		axisLength = inertia.AxisLength(ring)
	}
	xAxis, yAxis := inertia.Axes(r, axisLength)

	return Data{
		Title:    "Cross-section",
		Unit:     r.Unit,
		Polygon:  ring,
		Centroid: r.Centroid,
		XAxis:    xAxis,
		YAxis:    yAxis,
		Ellipse:  inertia.Ellipse(r, samples),
	}
}

// Extent returns the bounding box of everything drawn.
func (d Data) Extent() r2.Box {
	box := r2.Box{Min: d.Centroid, Max: d.Centroid}
	grow := func(v r2.Vec) {
		box.Min = r2.Vec{X: min(box.Min.X, v.X), Y: min(box.Min.Y, v.Y)}
		box.Max = r2.Vec{X: max(box.Max.X, v.X), Y: max(box.Max.Y, v.Y)}
	}
	for _, v := range d.Polygon {
		grow(v)
	}
	for _, v := range d.Ellipse {
		grow(v)
	}
	grow(r2.Add(d.Centroid, d.XAxis))
	grow(r2.Add(d.Centroid, d.YAxis))
	return box
}

// squareExtent widens the shorter side of Extent so both spans are equal,
// then pads by margin (a fraction of the span).
func (d Data) squareExtent(margin float64) r2.Box {
	box := d.Extent()
	span := max(box.Max.X-box.Min.X, box.Max.Y-box.Min.Y)
	if span == 0 {
		span = 1
	}
	half := span * (0.5 + margin)
	c := r2.Scale(0.5, r2.Add(box.Min, box.Max))
	return r2.Box{
		Min: r2.Vec{X: c.X - half, Y: c.Y - half},
		Max: r2.Vec{X: c.X + half, Y: c.Y + half},
	}
}
