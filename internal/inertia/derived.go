package inertia

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultEllipseSamples is the number of points used to trace the inertia ellipse.
const DefaultEllipseSamples = 100

// Gyration returns the radii of gyration about the principal axes.
func Gyration(p PrincipalResult, area float64) (ixc, iyc float64, err error) {
	rx := p.IxC / area
	ry := p.IyC / area
	if rx < 0 {
		return 0, 0, fmt.Errorf("%w: I_xp = %g with A = %g", ErrNegativePrincipalMoment, p.IxC, area)
	}
	if ry < 0 {
		return 0, 0, fmt.Errorf("%w: I_yp = %g with A = %g", ErrNegativePrincipalMoment, p.IyC, area)
	}
	return math.Sqrt(rx), math.Sqrt(ry), nil
}

// Ellipse traces the inertia ellipse of r: semi-axis iyc along the principal
// x axis and ixc along the principal y axis, centred on the centroid. The
// parameter runs over [0, 2π] inclusive, so the first and last points
// coincide. A non-positive samples count uses DefaultEllipseSamples.
func Ellipse(r *Result, samples int) []Vertex {
	if samples <= 0 {
		samples = DefaultEllipseSamples
	}

	var step float64
	if samples > 1 {
		step = 2 * math.Pi / float64(samples-1)
	}

	cos, sin := math.Cos(r.Principal.Alpha), math.Sin(r.Principal.Alpha)
	pts := make([]Vertex, samples)
	for i := range pts {
		t := float64(i) * step
		local := r2.Vec{X: r.Iyc * math.Cos(t), Y: r.Ixc * math.Sin(t)}
		pts[i] = r2.Add(r.Centroid, rotate(local, cos, sin))
	}
	return pts
}

// Axes returns the principal x and y axis direction vectors scaled to length.
func Axes(r *Result, length float64) (xAxis, yAxis Vertex) {
	cos, sin := math.Cos(r.Principal.Alpha), math.Sin(r.Principal.Alpha)
	xAxis = r2.Vec{X: length * cos, Y: length * sin}
	yAxis = r2.Vec{X: -length * sin, Y: length * cos}
	return xAxis, yAxis
}

// AxisLength picks a display length for the principal axes: the largest
// distance between an extreme coordinate and the mean of that coordinate.
func AxisLength(ring []Vertex) float64 {
	if len(ring) == 0 {
		return 0
	}

	var mean r2.Vec
	lo, hi := ring[0], ring[0]
	for _, v := range ring {
		mean = r2.Add(mean, v)
		lo = r2.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y)}
		hi = r2.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y)}
	}
	mean = r2.Scale(1/float64(len(ring)), mean)

	return math.Max(
		math.Max(math.Abs(hi.X-mean.X), math.Abs(lo.X-mean.X)),
		math.Max(math.Abs(hi.Y-mean.Y), math.Abs(lo.Y-mean.Y)),
	)
}

func rotate(v r2.Vec, cos, sin float64) r2.Vec {
	return r2.Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
