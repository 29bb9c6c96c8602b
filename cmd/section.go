package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section property calculation",
	Long: `Calculate the geometric properties of a cross-section defined
by a closed polygon.

The polygon is read either from a JSON/YAML section file or from a
coordinate table (one "X;Y" or "X<TAB>Y" row per vertex, decimal
commas allowed) as copied from a spreadsheet.

Subcommands:
  analyze  - Calculate area, centroid, moments of inertia and principal axes
  schema   - Print the JSON Schema for section files

Example JSON file structure:
{
  "name": "T-Beam Section",
  "unit": "mm",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": -300, "y": 500},
    {"x": -300, "y": 400},
    {"x": 0, "y": 400}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
