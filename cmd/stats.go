package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arjun/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a run's lifecycle, validation outcomes and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		events := s.EventRepo()

		if runID == "" {
			runID, err = s.SnapshotRepo().LatestRunID(ctx)
			if err != nil {
				return fmt.Errorf("find latest run: %w", err)
			}
			if runID == "" {
				fmt.Println("No stored runs yet.")
				return nil
			}
		}

		log, err := events.RunLog(ctx, runID)
		if err != nil {
			return fmt.Errorf("load run log: %w", err)
		}
		if len(log) == 0 {
			return fmt.Errorf("no events recorded for run %s", runID)
		}

		fmt.Printf("Run %s\n", runID)
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range log {
			fmt.Printf("%s  %-9s  %-15s  %s\n",
				e.Timestamp.Local().Format("15:04:05"), e.Stage, e.Kind, e.Detail)
		}

		for _, e := range log {
			if e.Kind != "completed" || len(e.Counts) == 0 {
				continue
			}
			fmt.Println("\nCounters")
			keys := make([]string, 0, len(e.Counts))
			for k := range e.Counts {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-16s %d\n", k, e.Counts[k])
			}
		}

		vlog, err := events.ValidationLog(ctx, runID)
		if err != nil {
			return fmt.Errorf("load validation log: %w", err)
		}
		if len(vlog) > 0 {
			passed, corrected := 0, 0
			for _, v := range vlog {
				if v.Passed {
					passed++
				}
				if v.Corrected {
					corrected++
				}
			}
			fmt.Printf("\nValidation: %d checked, %d passed, %d corrected, %d dropped\n",
				len(vlog), passed, corrected, len(vlog)-passed-corrected)
			for _, v := range vlog {
				if v.Passed {
					continue
				}
				status := "dropped"
				if v.Corrected {
					status = "corrected"
				}
				fmt.Printf("  %-9s  %-20s  %s\n", status, v.ItemID, v.Note)
			}
		}

		if usage, err := events.RunUsage(ctx, runID); err == nil && usage.Calls > 0 {
			fmt.Printf("\nLLM usage: %d calls, %d in / %d out tokens, ~$%.4f\n",
				usage.Calls, usage.InputTokens, usage.OutputTokens, usage.CostUSD)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("run", "", "Run ID to inspect (default: latest)")
}
