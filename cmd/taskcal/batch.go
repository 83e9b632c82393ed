package main

import (
	"github.com/spf13/cobra"

	"nlp-task-calendar/internal/extraction"
)

var (
	batchInput  string
	batchOutput string
)

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "tasks file (default: batch.input_file)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "results file (default: batch.output_file)")
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a tasks file into a results file",
	Long: `Read {"tasks":[{"text":...}]} and write {"results":[{"original_text":...,"extracted_entities":...}]}.
Entries without a text are skipped. The results file is replaced atomically.

Examples:
  taskcal batch
  taskcal batch --input tasks.json --output results.json`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, _ []string) error {
	_, _, services, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	out, err := services.Extraction.ProcessFile(cmd.Context(), extraction.ProcessFileInput{
		InputPath:  batchInput,
		OutputPath: batchOutput,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Processed %d tasks (%d skipped, %d failed). Results saved to %s\n",
		out.Processed, out.Skipped, out.Failed, out.OutputPath)
	return nil
}
