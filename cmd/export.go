package cmd

import (
	"fmt"
	"os"

	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored run as an exam sheet or JSON",
	Long: `Read a run's questions back from the store and render them.

Without --run the most recently stored run is exported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, _ := cmd.Flags().GetString("run")
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")
		noExplanations, _ := cmd.Flags().GetBool("no-explanations")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		snapshots := s.SnapshotRepo()
		if runID == "" {
			runID, err = snapshots.LatestRunID(ctx)
			if err != nil {
				return fmt.Errorf("find latest run: %w", err)
			}
			if runID == "" {
				return fmt.Errorf("no stored runs yet; generate one with mcqgen run")
			}
		}

		items, err := snapshots.ItemsForRun(ctx, runID)
		if err != nil {
			return fmt.Errorf("load run %s: %w", runID, err)
		}
		if len(items) == 0 {
			return fmt.Errorf("run %s has no stored items", runID)
		}

		questions := export.FromStored(items)
		include := !noExplanations

		var payload []byte
		switch format {
		case "markdown", "md":
			doc := export.Markdown(questions, export.MarkdownOptions{
				Title:               title,
				IncludeExplanations: include,
			})
			payload = []byte(doc)
		case "json":
			raw, err := export.JSON(export.New(title, runID, questions), include)
			if err != nil {
				return fmt.Errorf("encode JSON: %w", err)
			}
			payload = raw
		default:
			return fmt.Errorf("unknown format %q: use markdown or json", format)
		}

		if outputPath == "" {
			fmt.Println(string(payload))
			return nil
		}
		if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Printf("Exported %d questions from run %s to %s\n", len(items), runID, outputPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("run", "", "Run ID to export (default: latest)")
	exportCmd.Flags().StringP("format", "f", "markdown", "Output format: markdown or json")
	exportCmd.Flags().StringP("output", "o", "", "Write to this file (default stdout)")
	exportCmd.Flags().String("title", "", "Title for the exported document")
	exportCmd.Flags().Bool("no-explanations", false, "Exclude the answer-key explanations")
}
