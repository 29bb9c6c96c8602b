// Package report renders calculation results as a terminal report or a
// semicolon-delimited CSV file. Every numeric result is printed in
// engineering notation.
package report

import (
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/alexiusacademia/gomoi/internal/notation"
)

// TimeLayout is the timestamp format used in report and CSV headers.
const TimeLayout = "02-01-2006 15:04:05"

// Row is one result line.
type Row struct {
	Description string // long form used by the text report
	Label       string // short form used by the CSV export
	Symbol      string
	Value       float64
	Unit        string
}

// Formatted returns the value in engineering notation.
func (r Row) Formatted() string {
	return notation.Engineering(r.Value)
}

// Rows lists the results of r in report order.
func Rows(r *inertia.Result) []Row {
	u := r.Unit
	return []Row{
		{"Cross-sectional area", "Area A", "A", r.Area, u + "^2"},
		{"Centroid X-coordinate", "Centroid X-coordinate X_C", "X_C", r.Centroid.X, u},
		{"Centroid Y-coordinate", "Centroid Y-coordinate Y_C", "Y_C", r.Centroid.Y, u},
		{"Moment of inertia about centroidal axis", "Moment of inertia I_x", "I_x", r.Moments.Ix, u + "^4"},
		{"Moment of inertia about centroidal axis", "Moment of inertia I_y", "I_y", r.Moments.Iy, u + "^4"},
		{"Deviation moment about centroidal axes", "Deviation moment I_xy", "I_xy", r.Moments.Ixy, u + "^4"},
		{"Principal axis orientation angle", "Principal axis angle alpha_p", "alpha_p", r.Principal.AlphaDegrees(), "deg"},
		{"Principal moment of inertia", "Principal inertia I_xp", "I_xp", r.Principal.IxC, u + "^4"},
		{"Principal moment of inertia", "Principal inertia I_yp", "I_yp", r.Principal.IyC, u + "^4"},
		{"Radius of gyration of cross-section", "Radius of gyration i_xp", "i_xp", r.Ixc, u},
		{"Radius of gyration of cross-section", "Radius of gyration i_yp", "i_yp", r.Iyc, u},
	}
}
