package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gomoi/internal/inertia"
)

// DefaultCSVFile is the export file name used when none is given.
const DefaultCSVFile = "results.csv"

// WriteCSV writes r as a semicolon-delimited table. Text fields are quoted,
// numbers are not.
func WriteCSV(w io.Writer, r *inertia.Result) error {
	cw := &csvWriter{w: bufio.NewWriter(w)}

	cw.row("Moment of Inertia Calculation")
	cw.row("Date and Time:", r.Time.Format(TimeLayout))
	cw.row("Selected Unit:", r.Unit)
	cw.row("Calculation ID:", r.ID.String())
	cw.row()

	cw.row("Cross-section defined by closed polygon:")
	cw.row(fmt.Sprintf("X [%s]", r.Unit), fmt.Sprintf("Y [%s]", r.Unit))
	for _, v := range r.Polygon() {
		cw.row(v.X, v.Y)
	}
	cw.row()

	cw.row("Results:")
	for _, row := range Rows(r) {
		cw.row(row.Label, row.Formatted(), row.Unit)
	}

	if cw.err != nil {
		return cw.err
	}
	return cw.w.Flush()
}

// SaveCSV writes r to path, creating parent directories as needed.
func SaveCSV(path string, r *inertia.Result) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not save file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteCSV(f, r)
}

type csvWriter struct {
	w   *bufio.Writer
	err error
}

// row accepts string and float64 fields.
func (c *csvWriter) row(fields ...interface{}) {
	if c.err != nil {
		return
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		switch v := f.(type) {
		case float64:
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		case string:
			parts[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		default:
			c.err = fmt.Errorf("csv: unsupported field type %T", f)
			return
		}
	}

	_, c.err = c.w.WriteString(strings.Join(parts, ";") + "\n")
}
