package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomoi/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomoi",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Cross-section Area Moment of Inertia Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
