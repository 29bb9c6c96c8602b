package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomoi/internal/section"
	"github.com/spf13/cobra"
)

var sectionSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for section files",
	Long: `Print the JSON Schema every section file is validated against.
YAML section files follow the same structure.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), section.Schema)
	},
}

func init() {
	sectionCmd.AddCommand(sectionSchemaCmd)
}
