package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gomoi/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gomoi",
	Short: "Cross-section Area Moment of Inertia Tool",
	Long: `gomoi - Go Moment of Inertia Calculator

A CLI tool that computes the geometric properties of an arbitrary
cross-section defined by a closed polygon.

For a polygon given as an ordered list of (X, Y) vertices it reports:
  - Area and centroid
  - Moments of inertia and deviation moment about centroidal axes
  - Principal moments of inertia and principal axis orientation
  - Radii of gyration and the inertia ellipse

Vertices are expected counter-clockwise. Units are labels only and are
never converted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomoi v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Moment of Inertia Calculator                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the geometric properties of polygonal")
		fmt.Println("  cross-sections used in beam and plate design.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Area, centroid and centroidal moments of inertia")
		fmt.Println("    • Principal moments, principal axis angle and radii of gyration")
		fmt.Println("    • Section input from JSON/YAML files or pasted coordinate tables")
		fmt.Println("    • CSV export and section plots (png, svg, pdf)")
		fmt.Println()
		fmt.Println("  Use 'gomoi --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log calculation steps to stderr")
}
