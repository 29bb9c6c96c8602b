package inertia

import (
	"time"

	"github.com/google/uuid"
)

// Result is a snapshot of one calculation. A new Result is produced for every
// calculation and none of its fields are updated afterwards.
type Result struct {
	ID   uuid.UUID
	Time time.Time
	Unit string

	// Area is signed: negative for a clockwise ring.
	Area     float64
	Centroid Vertex

	// Moments are about axes through the centroid, parallel to the input axes.
	Moments   Tensor
	Principal PrincipalResult

	// Radii of gyration about the principal axes.
	Ixc float64
	Iyc float64

	polygon []Vertex
	entered int
}

// Polygon returns a copy of the closed ring the result was computed from.
func (r *Result) Polygon() []Vertex {
	out := make([]Vertex, len(r.polygon))
	copy(out, r.polygon)
	return out
}

// Vertices returns the vertices as entered, without the closing vertex
// Normalize appended to an open input.
func (r *Result) Vertices() []Vertex {
	out := make([]Vertex, r.entered)
	copy(out, r.polygon)
	return out
}

// Compute runs the full pipeline on vs and stamps the result with the
// current time. unit is a display label only.
func Compute(vs []Vertex, unit string) (*Result, error) {
	return ComputeAt(vs, unit, time.Now())
}

// ComputeAt is Compute with an explicit timestamp.
func ComputeAt(vs []Vertex, unit string, at time.Time) (*Result, error) {
	ring, err := Normalize(vs)
	if err != nil {
		return nil, err
	}

	area, xc, yc, err := AreaCentroid(ring)
	if err != nil {
		return nil, err
	}

	moments := Moments(ring).Centroidal(area, xc, yc)
	principal := Principal(moments)

	ixc, iyc, err := Gyration(principal, area)
	if err != nil {
		return nil, err
	}

	return &Result{
		ID:        uuid.New(),
		Time:      at,
		Unit:      unit,
		Area:      area,
		Centroid:  Vertex{X: xc, Y: yc},
		Moments:   moments,
		Principal: principal,
		Ixc:       ixc,
		Iyc:       iyc,
		polygon:   ring,
		entered:   len(vs),
	}, nil
}
