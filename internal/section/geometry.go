package section

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds returns the bounding box of the vertices.
func Bounds(vs []inertia.Vertex) r2.Box {
	if len(vs) == 0 {
		return r2.Box{}
	}

	box := r2.Box{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		box.Min = r2.Vec{X: math.Min(box.Min.X, v.X), Y: math.Min(box.Min.Y, v.Y)}
		box.Max = r2.Vec{X: math.Max(box.Max.X, v.X), Y: math.Max(box.Max.Y, v.Y)}
	}
	return box
}

// Spans returns the x intervals where a horizontal line at y lies inside the
// closed ring, using the even-odd rule.
func Spans(ring []inertia.Vertex, y float64) [][2]float64 {
	xs := intersectionsAtY(ring, y)
	sort.Float64s(xs)

	var spans [][2]float64
	for i := 0; i+1 < len(xs); i += 2 {
		spans = append(spans, [2]float64{xs[i], xs[i+1]})
	}
	return spans
}

// intersectionsAtY finds all X coordinates where a horizontal line at Y intersects the ring
func intersectionsAtY(ring []inertia.Vertex, y float64) []float64 {
	var xs []float64

	for i := 0; i+1 < len(ring); i++ {
		v1, v2 := ring[i], ring[i+1]

		// Half-open test so a vertex on the line is counted once.
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}

	return xs
}
