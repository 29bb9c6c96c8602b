// Package inertia computes the cross-sectional properties of a simple closed
// polygon: area, centroid, second moments of area, principal moments and
// radii of gyration.
//
// Vertices are expected counter-clockwise. The orientation is not checked;
// a clockwise ring yields a negative area and the sign propagates through
// every moment.
package inertia

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex is a polygon corner in the input coordinate system.
type Vertex = r2.Vec

// MinVertices is the smallest number of vertices accepted by Normalize.
const MinVertices = 3

// Normalize returns a closed copy of vs, appending the first vertex when the
// last one differs from it. The input slice is never modified.
func Normalize(vs []Vertex) ([]Vertex, error) {
	if len(vs) < MinVertices {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientVertices, len(vs), MinVertices)
	}

	closed := vs[0] == vs[len(vs)-1]
	n := len(vs)
	if !closed {
		n++
	}

	ring := make([]Vertex, n)
	copy(ring, vs)
	if !closed {
		ring[n-1] = vs[0]
	}

	// A closed ring needs three distinct corners plus the closing duplicate.
	if len(ring) < MinVertices+1 {
		return nil, fmt.Errorf("%w: closed ring has %d entries, need at least %d", ErrInsufficientVertices, len(ring), MinVertices+1)
	}
	return ring, nil
}

// IsClosed reports whether the first and last vertices of vs are equal.
func IsClosed(vs []Vertex) bool {
	return len(vs) > 0 && vs[0] == vs[len(vs)-1]
}

// cross is the shoelace term x_i*y_j - x_j*y_i.
func cross(a, b Vertex) float64 {
	return a.X*b.Y - b.X*a.Y
}
