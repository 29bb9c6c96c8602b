package inertia

// Tensor holds the second moments of area (Ix, Iy) and the product of
// inertia (Ixy) about a given origin.
type Tensor struct {
	Ix  float64
	Iy  float64
	Ixy float64
}

// Moments integrates the second moments of a closed ring about the origin of
// its coordinate system.
func Moments(ring []Vertex) Tensor {
	var sx, sy, sxy float64

	for i := 0; i < len(ring)-1; i++ {
		x0, y0 := ring[i].X, ring[i].Y
		x1, y1 := ring[i+1].X, ring[i+1].Y
		c := x0*y1 - x1*y0

		sx += (y0*y0 + y0*y1 + y1*y1) * c
		sy += (x0*x0 + x0*x1 + x1*x1) * c
		sxy += (y0 - y1) * (3*x0*x0*y0 + x0*x0*y1 + x1*x1*y0 + 3*x1*x1*y1 +
			2*x0*x1*y0 + 2*x0*x1*y1)
	}

	return Tensor{
		Ix:  sx / 12,
		Iy:  sy / 12,
		Ixy: -sxy / 24,
	}
}

// Centroidal shifts t from the coordinate origin to the centroid (xc, yc) of
// a section with the given area, using the parallel-axis theorem.
func (t Tensor) Centroidal(area, xc, yc float64) Tensor {
	return Tensor{
		Ix:  t.Ix - area*yc*yc,
		Iy:  t.Iy - area*xc*xc,
		Ixy: t.Ixy - area*xc*yc,
	}
}
