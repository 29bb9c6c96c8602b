package inertia

import "math"

// PrincipalResult holds the principal moments and the rotation Alpha (in
// radians) from the centroidal axes to the principal axes.
//
// IxC belongs to the rotated x axis and IyC to the rotated y axis. The pair
// is not sorted by magnitude.
type PrincipalResult struct {
	IxC   float64
	IyC   float64
	Alpha float64
}

// AlphaDegrees returns the principal axis angle in degrees.
func (p PrincipalResult) AlphaDegrees() float64 {
	return p.Alpha * 180 / math.Pi
}

// Principal diagonalizes a centroidal tensor.
func Principal(t Tensor) PrincipalResult {
	var alpha float64
	if t.Ixy != 0 {
		alpha = 0.5 * Resolve(2*t.Ixy, t.Iy-t.Ix)
	}

	cos, sin := math.Cos(alpha), math.Sin(alpha)
	sin2 := math.Sin(2 * alpha)

	return PrincipalResult{
		IxC:   t.Ix*cos*cos + t.Iy*sin*sin - t.Ixy*sin2,
		IyC:   t.Ix*sin*sin + t.Iy*cos*cos + t.Ixy*sin2,
		Alpha: alpha,
	}
}
