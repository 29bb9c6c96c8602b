package report

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareResult(t *testing.T) *inertia.Result {
	t.Helper()
	vs := []inertia.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	r, err := inertia.ComputeAt(vs, "cm", time.Date(2025, 1, 31, 9, 5, 7, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func TestRows(t *testing.T) {
	rows := Rows(squareResult(t))
	require.Len(t, rows, 11)

	assert.Equal(t, "A", rows[0].Symbol)
	assert.Equal(t, "cm^2", rows[0].Unit)
	assert.Equal(t, "1.000e+00", rows[0].Formatted())
	assert.Equal(t, "500.000e-03", rows[1].Formatted())
	assert.Equal(t, "83.333e-03", rows[3].Formatted())
	assert.Equal(t, "0.00e+00", rows[5].Formatted())
	assert.Equal(t, "0.00e+00", rows[6].Formatted())
	assert.Equal(t, "deg", rows[6].Unit)
	assert.Equal(t, "i_yp", rows[10].Symbol)
	assert.Equal(t, "cm", rows[10].Unit)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, "Unit square", squareResult(t)))

	out := buf.String()
	assert.Contains(t, out, "Section: Unit square")
	assert.Contains(t, out, "Date and Time: 31-01-2025 09:05:07")
	assert.Contains(t, out, "X [cm]")
	assert.Contains(t, out, "Principal axis orientation angle")
	assert.Contains(t, out, "i_xp =")
	assert.Contains(t, out, "288.675e-03")
}

func TestWriteTextListsEnteredVertices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, "", squareResult(t)))

	out := buf.String()
	assert.Contains(t, out, "\n  4 ")
	assert.NotContains(t, out, "\n  5 ")
	assert.NotContains(t, out, "Section:")
}

func TestWriteCSV(t *testing.T) {
	r := squareResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, `"Moment of Inertia Calculation"`, lines[0])
	assert.Equal(t, `"Date and Time:";"31-01-2025 09:05:07"`, lines[1])
	assert.Equal(t, `"Selected Unit:";"cm"`, lines[2])
	assert.Equal(t, `"Calculation ID:";"`+r.ID.String()+`"`, lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, `"X [cm]";"Y [cm]"`, lines[6])
	assert.Equal(t, "0;0", lines[7])
	assert.Equal(t, "1;0", lines[8])
	assert.Equal(t, "0;0", lines[11], "closing vertex is exported")
	assert.Equal(t, `"Results:"`, lines[13])
	assert.Equal(t, `"Area A";"1.000e+00";"cm^2"`, lines[14])
	assert.Equal(t, `"Principal axis angle alpha_p";"0.00e+00";"deg"`, lines[20])
	assert.Len(t, lines, 25)
}

func TestCSVQuotesEmbeddedQuotes(t *testing.T) {
	var buf bytes.Buffer
	cw := &csvWriter{w: bufio.NewWriter(&buf)}
	cw.row(`say "hi"`, 2.5)
	require.NoError(t, cw.w.Flush())
	assert.Equal(t, `"say ""hi""";2.5`+"\n", buf.String())

	cw.row(3)
	assert.Error(t, cw.err)
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultCSVFile)
	require.NoError(t, SaveCSV(path, squareResult(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(`"Moment of Inertia Calculation"`)))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	r := squareResult(t)
	assert.ErrorContains(t, WriteText(failingWriter{}, "", r), "disk full")
	assert.ErrorContains(t, WriteCSV(failingWriter{}, r), "disk full")
}
