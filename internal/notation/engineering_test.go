package notation

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineering(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00e+00"},
		{12345, "12.345e+03"},
		{1, "1.000e+00"},
		{999, "999.000e+00"},
		{1000, "1.000e+03"},
		{1e6, "1.000e+06"},
		{0.5, "500.000e-03"},
		{0.001, "1.000e-03"},
		{-0.00123, "-1.230e-03"},
		{-45.6, "-45.600e+00"},
		{6.02e23, "602.000e+21"},
		{1e-12, "1.000e-12"},
		{1e100, "10.000e+99"},
		{1.5e300, "1.500e+300"},
		{999.9996, "1.000e+03"},
		{0.9999996, "1.000e+00"},
		{-999999.6, "-1.000e+06"},
		{999.9994, "999.999e+00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Engineering(tt.in), "Engineering(%v)", tt.in)
	}
}

func TestEngineeringNonFinite(t *testing.T) {
	assert.Equal(t, "NaN", Engineering(math.NaN()))
	assert.Equal(t, "+Inf", Engineering(math.Inf(1)))
	assert.Equal(t, "-Inf", Engineering(math.Inf(-1)))
}

func TestEngineeringRoundTrip(t *testing.T) {
	values := []float64{3.14159, -2718.28, 0.000123456, 98765432.1, 1.0 / 12, -7e-9, 42, 999.9996, 0.9999996, -999999.6}
	for _, v := range values {
		s := Engineering(v)
		mant, exp, ok := strings.Cut(s, "e")
		require.True(t, ok, s)

		m, err := strconv.ParseFloat(mant, 64)
		require.NoError(t, err)
		e, err := strconv.Atoi(exp)
		require.NoError(t, err)

		assert.Zero(t, e%3, s)
		assert.GreaterOrEqual(t, math.Abs(m), 1.0, s)
		assert.Less(t, math.Abs(m), 1000.0, s)
		assert.InDelta(t, v, m*math.Pow10(e), 0.0005*math.Pow10(e), s)
	}
}
