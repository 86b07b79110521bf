package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arjun/mcqgen/internal/app"
	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [set.json]",
	Short: "Browse a question set in the terminal",
	Long: `Open a generated question set in an interactive browser: pick a
question, answer it or reveal the correct option, and read the
explanation for every distractor.

With a file argument the set is read from a JSON export. Otherwise the
questions come from the store, from --run or the most recent run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts app.Options

		if len(args) == 1 {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read question set: %w", err)
			}
			var set export.Export
			if err := json.Unmarshal(raw, &set); err != nil {
				return fmt.Errorf("parse question set %s: %w", args[0], err)
			}
			if len(set.Questions) == 0 {
				return fmt.Errorf("%s contains no questions", args[0])
			}
			opts = app.Options{Title: set.Title, Questions: set.Questions}
		} else {
			runID, _ := cmd.Flags().GetString("run")

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

			opts = app.Options{
				Title:     fmt.Sprintf("Run %.8s", runID),
				Questions: export.FromStored(items),
			}
		}

		return app.Run(opts)
	},
}

func init() {
	reviewCmd.Flags().String("run", "", "Run ID to browse (default: latest)")
}
