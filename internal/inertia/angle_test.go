package inertia

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMatchesAtan2(t *testing.T) {
	values := []float64{-3, -1, -0.25, 0, 0.5, 2, 7}
	for _, y := range values {
		for _, x := range values {
			// The negative x-axis resolves to 0, not π.
			if y == 0 && x <= 0 {
				continue
			}
			assert.InDelta(t, math.Atan2(y, x), Resolve(y, x), 1e-12, "y=%v x=%v", y, x)
		}
	}
}

func TestResolveAxes(t *testing.T) {
	assert.Equal(t, 0.0, Resolve(0, 0))
	assert.Equal(t, math.Pi/2, Resolve(3, 0))
	assert.Equal(t, -math.Pi/2, Resolve(-3, 0))
	assert.Equal(t, 0.0, Resolve(0, 5))
	// y == 0 with x < 0 has no π correction.
	assert.InDelta(t, 0.0, Resolve(0, -5), 1e-15)
}
