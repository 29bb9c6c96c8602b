package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomoi/internal/inertia"
)

// Section is a cross-section defined by the vertices of a simple polygon.
// Vertices should be listed counter-clockwise; the ring is closed
// automatically if the last vertex differs from the first.
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Length unit label (mm, cm, m, in, ft). Labelling only, never converted.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Polygon returns the section vertices in the form expected by inertia.Compute.
func (s *Section) Polygon() []inertia.Vertex {
	vs := make([]inertia.Vertex, len(s.Vertices))
	for i, p := range s.Vertices {
		vs[i] = inertia.Vertex{X: p.X, Y: p.Y}
	}
	return vs
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < inertia.MinVertices {
		return &ValidationError{Field: "vertices", msg: fmt.Sprintf("section must have at least %d vertices", inertia.MinVertices)}
	}
	if s.Unit != "" && !ValidUnit(s.Unit) {
		return &ValidationError{Field: "unit", msg: fmt.Sprintf("unknown unit %q", s.Unit)}
	}
	for i, p := range s.Vertices {
		if !finite(p.X) || !finite(p.Y) {
			return &ValidationError{
				Field: fmt.Sprintf("vertices.%d", i),
				msg:   fmt.Sprintf("vertex %d is not a finite coordinate pair", i+1),
				err:   ErrInvalidCoordinate,
			}
		}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	Field string
	msg   string
	err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.msg
	}
	return e.Field + ": " + e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
