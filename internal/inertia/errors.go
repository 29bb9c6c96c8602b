package inertia

import "errors"

var (
	// ErrInsufficientVertices is returned when a polygon has fewer than 3 vertices.
	ErrInsufficientVertices = errors.New("insufficient vertices")

	// ErrDegeneratePolygon is returned when the signed area of a polygon is zero.
	ErrDegeneratePolygon = errors.New("degenerate polygon")

	// ErrNegativePrincipalMoment is returned when a principal moment has the
	// opposite sign to the area, leaving its radius of gyration undefined.
	ErrNegativePrincipalMoment = errors.New("negative principal moment")
)
