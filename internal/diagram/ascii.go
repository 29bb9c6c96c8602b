package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gomoi/internal/notation"
	"github.com/alexiusacademia/gomoi/internal/section"
	"gonum.org/v1/gonum/spatial/r2"
)

// Characters used by DrawASCII.
const (
	glyphFill     = '░'
	glyphOutline  = '█'
	glyphEllipse  = 'o'
	glyphXAxis    = 'x'
	glyphYAxis    = 'y'
	glyphCentroid = '+'
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// DrawASCII renders the section on a character grid cols wide. The number of
// rows follows from the drawing's proportions so both axes share one scale.
func DrawASCII(d Data, cols int) string {
	if cols < 10 {
		cols = 10
	}

	box := d.squareExtent(0.05)
	spanX := box.Max.X - box.Min.X
	spanY := box.Max.Y - box.Min.Y
	s := spanX / float64(cols) // world units per column
	rows := int(math.Ceil(spanY / (s * cellAspect)))

	c := &canvas{
		cells: make([][]rune, rows),
		min:   box.Min,
		maxY:  box.Max.Y,
		sx:    s,
		sy:    s * cellAspect,
	}
	for i := range c.cells {
		c.cells[i] = []rune(strings.Repeat(" ", cols))
	}

	// Interior, scanned at the centre of each row.
	for row := 0; row < rows; row++ {
		y := box.Max.Y - (float64(row)+0.5)*c.sy
		for _, span := range section.Spans(d.Polygon, y) {
			for x := span[0]; x <= span[1]; x += s / 2 {
				c.set(r2.Vec{X: x, Y: y}, glyphFill)
			}
		}
	}

	c.path(d.Polygon, glyphOutline)
	c.path(d.Ellipse, glyphEllipse)
	c.path([]r2.Vec{d.Centroid, r2.Add(d.Centroid, d.XAxis)}, glyphXAxis)
	c.path([]r2.Vec{d.Centroid, r2.Add(d.Centroid, d.YAxis)}, glyphYAxis)
	c.set(d.Centroid, glyphCentroid)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(d.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(d.Title))))
	for _, line := range c.cells {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = Section outline, %c = Section area\n", glyphOutline, glyphFill))
	sb.WriteString(fmt.Sprintf("  %c = Centroid (%s, %s) %s\n", glyphCentroid,
		notation.Engineering(d.Centroid.X), notation.Engineering(d.Centroid.Y), d.Unit))
	sb.WriteString(fmt.Sprintf("  %c / %c = Principal axes x_c / y_c\n", glyphXAxis, glyphYAxis))
	sb.WriteString(fmt.Sprintf("  %c = Inertia ellipse\n", glyphEllipse))
	sb.WriteString(fmt.Sprintf("  Scale: 1 column = %s %s\n", notation.Engineering(s), d.Unit))

	return sb.String()
}

// SummaryBox creates a summary box for results
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-2-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

type canvas struct {
	cells  [][]rune
	min    r2.Vec
	maxY   float64
	sx, sy float64
}

func (c *canvas) set(p r2.Vec, ch rune) {
	col := int(math.Floor((p.X - c.min.X) / c.sx))
	row := int(math.Floor((c.maxY - p.Y) / c.sy))
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = ch
}

// path plots the polyline through pts, sampling each segment at half a cell.
func (c *canvas) path(pts []r2.Vec, ch rune) {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		seg := r2.Sub(b, a)
		steps := int(math.Ceil(r2.Norm(seg)/(c.sx/2))) + 1
		for k := 0; k <= steps; k++ {
			c.set(r2.Add(a, r2.Scale(float64(k)/float64(steps), seg)), ch)
		}
	}
	if len(pts) == 1 {
		c.set(pts[0], ch)
	}
}
