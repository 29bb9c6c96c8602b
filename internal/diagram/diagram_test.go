package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func tSection(t *testing.T) *inertia.Result {
	t.Helper()
	vs := []inertia.Vertex{
		{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 400}, {X: 600, Y: 400},
		{X: 600, Y: 500}, {X: -300, Y: 500}, {X: -300, Y: 400}, {X: 0, Y: 400},
	}
	r, err := inertia.Compute(vs, "mm")
	require.NoError(t, err)
	return r
}

func TestFromResult(t *testing.T) {
	r := tSection(t)

	d := FromResult(r, 0, 0)
	assert.Equal(t, "mm", d.Unit)
	assert.Len(t, d.Polygon, 9)
	assert.Len(t, d.Ellipse, inertia.DefaultEllipseSamples)
	assert.InDelta(t, inertia.AxisLength(r.Polygon()), r2.Norm(d.XAxis), 1e-9)

	d = FromResult(r, 50, 20)
	assert.InDelta(t, 50, r2.Norm(d.YAxis), 1e-9)
	assert.Len(t, d.Ellipse, 20)
}

func TestExtentCoversDrawing(t *testing.T) {
	d := FromResult(tSection(t), 1000, 0)
	box := d.Extent()
	assert.LessOrEqual(t, box.Min.X, -300.0)
	assert.GreaterOrEqual(t, box.Max.Y, 500.0)
	assert.GreaterOrEqual(t, box.Max.X, d.Centroid.X+d.XAxis.X)

	sq := d.squareExtent(0)
	assert.InDelta(t, sq.Max.X-sq.Min.X, sq.Max.Y-sq.Min.Y, 1e-9)
}

func TestDrawASCII(t *testing.T) {
	out := DrawASCII(FromResult(tSection(t), 0, 0), 60)

	assert.Contains(t, out, "CROSS-SECTION")
	assert.Contains(t, out, "Legend:")
	for _, ch := range []rune{glyphOutline, glyphFill, glyphCentroid, glyphXAxis, glyphYAxis, glyphEllipse} {
		assert.True(t, strings.ContainsRune(out, ch), "missing %q", ch)
	}
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 80)
	}
}

func TestSummaryBox(t *testing.T) {
	content := []string{"α = 12.5°", "I_xp = 1.000e+06 mm^4"}
	box := SummaryBox("PRINCIPAL AXES", content)
	lines := strings.Split(strings.TrimSuffix(box, "\n"), "\n")
	// Top border, title, separator, content, bottom border.
	require.Len(t, lines, len(content)+4)
	assert.Contains(t, lines[1], "PRINCIPAL AXES")

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportPlot(t *testing.T) {
	d := FromResult(tSection(t), 0, 0)
	dir := t.TempDir()

	for _, name := range []string{"section.png", "nested/section.svg", "section.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportPlot(d, path), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.NoError(t, ExportPlot(d, filepath.Join(dir, "plain")))
	_, err := os.Stat(filepath.Join(dir, "plain.png"))
	assert.NoError(t, err)
}

func TestArrowXYs(t *testing.T) {
	xys := arrowXYs(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 0})
	require.Len(t, xys, 5)
	assert.Equal(t, 3.0, xys[1].X)
	// Left barb above a rightward shaft, right barb below, mirrored.
	assert.Less(t, xys[2].X, 3.0)
	assert.Greater(t, xys[2].Y, 1.0)
	assert.Less(t, xys[4].Y, 1.0)
	assert.InDelta(t, xys[2].X, xys[4].X, 1e-12)
	assert.InDelta(t, xys[2].Y-1, 1-xys[4].Y, 1e-12)

	assert.Len(t, arrowXYs(r2.Vec{}, r2.Vec{}), 2)
}
