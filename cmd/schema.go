// Package cmd implements the command-line interface for vidmark.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidmark-cli/vidmark/timecode"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
	schemaCmd.Flags().BoolP("compact", "c", false, "Emit the schema without indentation")
}

// schemaCmd emits the JSON Schema describing annotation sidecar files.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for annotation sidecar files",
	Long:  "Print the JSON Schema that annotation sidecar files must satisfy, suitable for editor validation tooling.",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		if !lo.Must(cmd.Flags().GetBool("compact")) {
			encoder.SetIndent("", "  ")
		}

		handleErr(encoder.Encode(timecode.Schema()))
	},
}
