package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <text...>",
	Short: "Extract entities from one sentence and print them as JSON",
	Long: `Extract entities from one sentence and print the bundle as JSON.

Examples:
  taskcal extract "Lunch at noon"
  taskcal extract Meeting from 2pm to 5pm`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, _, services, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	b, err := services.Extractor.Extract(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "    ")
	return enc.Encode(b)
}
