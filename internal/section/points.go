package section

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gomoi/internal/inertia"
)

// ErrInvalidCoordinate is returned when a coordinate is not a finite number.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

var columnSep = regexp.MustCompile(`[\t;]`)

// ParsePoints reads a coordinate table as copied from a spreadsheet: one
// vertex per line, columns separated by tabs or semicolons, decimal commas
// allowed. Only the first two columns are used and empty cells read as 0.
// Lines with fewer than two columns are skipped and reported in warnings.
func ParsePoints(r io.Reader) (vs []inertia.Vertex, warnings []string, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		cols := columnSep.Split(text, -1)
		if len(cols) < 2 {
			warnings = append(warnings, fmt.Sprintf("line %d: each row must contain two values (X and Y)", line))
			continue
		}

		row := len(vs) + 1
		x, err := parseCell(cols[0])
		if err != nil {
			return nil, warnings, fmt.Errorf("%w: row %d: X %v", ErrInvalidCoordinate, row, err)
		}
		y, err := parseCell(cols[1])
		if err != nil {
			return nil, warnings, fmt.Errorf("%w: row %d: Y %v", ErrInvalidCoordinate, row, err)
		}
		vs = append(vs, inertia.Vertex{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading coordinates: %w", err)
	}
	return vs, warnings, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", "."))
	if cell == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", cell)
	}
	if !finite(v) {
		return 0, fmt.Errorf("%q is not finite", cell)
	}
	return v, nil
}
