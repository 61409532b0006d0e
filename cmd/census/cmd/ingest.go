package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.xlsx> [file2.xlsx ...]",
	Short: "Extract and reconcile workbooks into events, without a report window",
	Long: `ingest runs the extractor and reconciler over the given workbooks and
prints the resulting events as JSON. Useful for inspecting the timeline the
pipeline reconstructed before picking a report window.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		events, err := loadEvents(c.Context(), args)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if globalFlags.Out != "" {
			f, err := os.Create(globalFlags.Out)
			if err != nil {
				return err
			}
			defer f.Close()
			enc = json.NewEncoder(f)
			enc.SetIndent("", "  ")
		}
		return enc.Encode(events)
	},
}
