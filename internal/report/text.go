package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/alexiusacademia/gomoi/internal/inertia"
)

const rule = "───────────────────────────────────────────────────────────────"

// WriteText prints the calculation report: a header, the vertices as entered
// and the results table. name may be empty.
func WriteText(w io.Writer, name string, r *inertia.Result) error {
	ew := &errWriter{w: w}

	ew.println()
	ew.println("═══════════════════════════════════════════════════════════════")
	ew.println("        MOMENT OF INERTIA CALCULATION")
	ew.println("═══════════════════════════════════════════════════════════════")
	ew.println()
	if name != "" {
		ew.printf("  Section: %s\n", name)
	}
	ew.printf("  Date and Time: %s\n", r.Time.Format(TimeLayout))
	ew.printf("  Calculation ID: %s\n", r.ID)
	ew.println()

	ew.println("CROSS-SECTION DEFINED BY CLOSED POLYGON:")
	ew.println(rule)
	tw := tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  #\tX [%s]\tY [%s]\n", r.Unit, r.Unit)
	fmt.Fprintf(tw, "  ─\t──────\t──────\n")
	for i, v := range r.Vertices() {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", i+1, formatCoord(v.X), formatCoord(v.Y))
	}
	tw.Flush()
	ew.println()

	ew.println("CALCULATION RESULTS:")
	ew.println(rule)
	tw = tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
	for _, row := range Rows(r) {
		fmt.Fprintf(tw, "  %s\t%s =\t%s\t%s\n", row.Description, row.Symbol, row.Formatted(), row.Unit)
	}
	tw.Flush()
	ew.println()

	return ew.err
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// errWriter keeps the first write error so the report body stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, a ...interface{}) {
	fmt.Fprintf(e, format, a...)
}

func (e *errWriter) println(a ...interface{}) {
	fmt.Fprintln(e, a...)
}
