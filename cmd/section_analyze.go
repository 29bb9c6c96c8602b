package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alexiusacademia/gomoi/internal/diagram"
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/alexiusacademia/gomoi/internal/notation"
	"github.com/alexiusacademia/gomoi/internal/report"
	"github.com/alexiusacademia/gomoi/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionAnalyzeFile        string
	sectionAnalyzePoints      string
	sectionAnalyzeUnit        string
	sectionAnalyzeCSVFile     string
	sectionAnalyzeExportFile  string
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeAxisLength  float64
	sectionAnalyzeSamples     int
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate the properties of a cross-section",
	Long: `Calculate area, centroid, moments of inertia about the centroidal
axes, principal moments of inertia, principal axis angle and radii of
gyration of a cross-section defined by a closed polygon.

The polygon is closed automatically when the last vertex differs from
the first.

Examples:
  gomoi section analyze --file t-beam.json
  gomoi section analyze -f angle.yaml --unit cm --csv results.csv
  gomoi section analyze --points coords.txt --diagram -o section.png
  pbpaste | gomoi section analyze --points -`,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	// Input
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section JSON or YAML file")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzePoints, "points", "p", "", "Path to coordinate table (tab or ';' separated), '-' for stdin")
	sectionAnalyzeCmd.MarkFlagsOneRequired("file", "points")
	sectionAnalyzeCmd.MarkFlagsMutuallyExclusive("file", "points")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeUnit, "unit", "u", section.DefaultUnit,
		fmt.Sprintf("Length unit label (%s)", strings.Join(section.Units, ", ")))

	// Output options
	sectionAnalyzeCmd.Flags().StringVar(&sectionAnalyzeCSVFile, "csv", "", "Save results to a ';' separated CSV file")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export section plot to file (png, svg, pdf)")
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeAxisLength, "axis-length", 0, "Length of the drawn principal axes (default: from section extent)")
	sectionAnalyzeCmd.Flags().IntVar(&sectionAnalyzeSamples, "samples", inertia.DefaultEllipseSamples, "Number of points on the inertia ellipse")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	name, vertices, fileUnit, err := readSection(cmd.InOrStdin())
	if err != nil {
		return err
	}

	unit := sectionAnalyzeUnit
	if !cmd.Flags().Changed("unit") && fileUnit != "" {
		unit = fileUnit
	}
	if !section.ValidUnit(unit) {
		return fmt.Errorf("unknown unit %q, expected one of %s", unit, strings.Join(section.Units, ", "))
	}

	slog.Debug("computing section properties", "vertices", len(vertices), "unit", unit, "closed", inertia.IsClosed(vertices))
	result, err := inertia.Compute(vertices, unit)
	if err != nil {
		return fmt.Errorf("calculating section properties: %s: %w", describe(err), err)
	}
	slog.Debug("calculation complete", "id", result.ID, "area", result.Area,
		"alpha", result.Principal.Alpha, "ixp", result.Principal.IxC, "iyp", result.Principal.IyC)
	if result.Area < 0 {
		slog.Warn("vertices are clockwise, area and moments carry a negative sign")
	}

	out := cmd.OutOrStdout()
	if err := report.WriteText(out, name, result); err != nil {
		return err
	}

	fmt.Fprint(out, diagram.SummaryBox("PRINCIPAL AXES", []string{
		fmt.Sprintf("alpha_p = %s deg", notation.Engineering(result.Principal.AlphaDegrees())),
		fmt.Sprintf("I_xp    = %s %s^4", notation.Engineering(result.Principal.IxC), unit),
		fmt.Sprintf("I_yp    = %s %s^4", notation.Engineering(result.Principal.IyC), unit),
	}))
	fmt.Fprintln(out)

	data := diagram.FromResult(result, sectionAnalyzeAxisLength, sectionAnalyzeSamples)

	// Show diagram if requested
	if sectionAnalyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCII(data, 60))
	}

	if sectionAnalyzeCSVFile != "" {
		if err := report.SaveCSV(sectionAnalyzeCSVFile, result); err != nil {
			return err
		}
		fmt.Fprintf(out, "Results saved to: %s\n", sectionAnalyzeCSVFile)
	}

	// Export diagram if requested
	if sectionAnalyzeExportFile != "" {
		if err := diagram.ExportPlot(data, sectionAnalyzeExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", sectionAnalyzeExportFile)
	}

	return nil
}

// readSection loads the polygon from --file or --points.
func readSection(stdin io.Reader) (name string, vs []inertia.Vertex, unit string, err error) {
	if sectionAnalyzeFile != "" {
		sec, err := section.LoadFromFile(sectionAnalyzeFile)
		if err != nil {
			return "", nil, "", fmt.Errorf("loading section: %w", err)
		}
		slog.Debug("loaded section file", "path", sectionAnalyzeFile, "format", section.FormatOf(sectionAnalyzeFile))
		return sec.Name, sec.Polygon(), sec.Unit, nil
	}

	r := stdin
	if sectionAnalyzePoints != "-" {
		f, err := os.Open(sectionAnalyzePoints)
		if err != nil {
			return "", nil, "", fmt.Errorf("loading coordinates: %w", err)
		}
		defer f.Close()
		r = f
	}

	vs, warnings, err := section.ParsePoints(r)
	for _, w := range warnings {
		slog.Warn(w)
	}
	if err != nil {
		return "", nil, "", fmt.Errorf("loading coordinates: %w", err)
	}
	return "", vs, "", nil
}

// describe turns a calculation failure into advice for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, inertia.ErrInsufficientVertices):
		return fmt.Sprintf("the minimum number of vertices is %d", inertia.MinVertices)
	case errors.Is(err, inertia.ErrDegeneratePolygon):
		return "the vertices enclose no area, check for collinear or repeated points"
	case errors.Is(err, inertia.ErrNegativePrincipalMoment):
		return "the polygon is not simple, check for self-intersecting edges"
	}
	return "calculation failed"
}
