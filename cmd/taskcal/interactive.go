package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nlp-task-calendar/internal/model"
)

// Shown when the bundle has no date or time.
const displayDefaultTime = "09:00"

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Extract entities from sentences typed at a prompt",
	Long: `Read sentences from stdin and print the extracted information.
Enter q to quit.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

type bundleExtractor interface {
	Extract(ctx context.Context, text string) (model.EntityBundle, error)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, _, services, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(cfg.NLP.Timezone)
	if err != nil {
		return err
	}
	now := func() time.Time { return time.Now().In(loc) }
	return repl(cmd.Context(), services.Extractor, cmd.InOrStdin(), cmd.OutOrStdout(), now)
}

func repl(ctx context.Context, ext bundleExtractor, in io.Reader, out io.Writer, now func() time.Time) error {
	fmt.Fprintln(out, "=== NLP Task Processing Tool ===")
	fmt.Fprintln(out, "Enter text to extract task information using NLP.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nEnter text (or 'q' to quit): ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		text := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(text), "q") {
			return nil
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		b, err := ext.Extract(ctx, text)
		if err != nil {
			fmt.Fprintf(out, "\nError processing text: %v\n", err)
			continue
		}
		printBundle(out, b, now())
	}
}

func printBundle(out io.Writer, b model.EntityBundle, now time.Time) {
	date := b.Date
	if date == "" {
		date = now.Format(model.DateLayout)
	}
	start := b.Time
	if start == "" {
		start = displayDefaultTime
	}

	fmt.Fprintln(out, "\n=== Extracted Information ===")
	fmt.Fprintf(out, "Task: %s\n", b.Task)
	fmt.Fprintf(out, "Date: %s\n", date)
	fmt.Fprintf(out, "Time: %s\n", start)
	if b.EndTime != "" {
		fmt.Fprintf(out, "End Time: %s\n", b.EndTime)
	}
	if len(b.Participants) > 0 {
		fmt.Fprintf(out, "People: %s\n", strings.Join(b.Participants, ", "))
	}
	if len(b.Locations) > 0 {
		fmt.Fprintf(out, "Locations: %s\n", strings.Join(b.Locations, ", "))
	}
}
