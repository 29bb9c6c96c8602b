package inertia

import "math"

// Resolve returns the angle of the vector (x, y) measured from the positive
// x-axis, over the full plane. Resolve(0, 0) is 0.
func Resolve(y, x float64) float64 {
	switch {
	case x > 0:
		return math.Atan(y / x)
	case x < 0:
		return math.Atan(y/x) + math.Pi*sign(y)
	default:
		return math.Pi / 2 * sign(y)
	}
}

// sign follows the sign(0) = 0 convention.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
