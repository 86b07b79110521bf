package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM traffic",
}

// withStore opens the configured database for a subcommand and closes
// it when the command returns.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(cmd.Context(), s)
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println("No LLM events recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
			for _, e := range events {
				if purpose != "" && e.Purpose != purpose {
					continue
				}
				ok := "yes"
				if !e.Success {
					ok = "FAIL"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					clip(e.Model, 28),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					ok,
				)
			}
			return w.Flush()
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one LLM event in full, including request and response bodies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			e, err := s.EventRepo().GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			rows := [][2]string{
				{"ID", strconv.Itoa(e.ID)},
				{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
				{"Provider", e.Provider},
				{"Model", e.Model},
				{"Purpose", e.Purpose},
				{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
				{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
				{"Success", strconv.FormatBool(e.Success)},
			}
			if e.ErrorMessage != "" {
				rows = append(rows, [2]string{"Error", e.ErrorMessage})
			}
			for _, r := range rows {
				fmt.Printf("%-9s %s\n", r[0]+":", r[1])
			}

			printBlock("REQUEST", e.RequestBody)
			printBlock("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

func printBlock(label, body string) {
	rule := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(label)
	fmt.Println(rule)
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and spend per purpose and model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Println("No LLM usage recorded yet.")
				return nil
			}

			fmt.Println("Usage by Purpose")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS")

			var calls, in, out int
			for _, u := range byPurpose {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.0f\n",
					u.Purpose, u.Calls, u.InputTokens, u.OutputTokens,
					u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
				calls += u.Calls
				in += u.InputTokens
				out += u.OutputTokens
			}
			fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d\t\n", calls, in, out, in+out)
			if err := w.Flush(); err != nil {
				return err
			}

			byModel, err := s.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(byModel) == 0 {
				return nil
			}

			fmt.Println()
			fmt.Println("Estimated Cost (USD)")
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST")

			var total float64
			var unpriced []string
			for _, u := range byModel {
				cost := llm.LookupCost(u.Model)
				if cost == nil {
					unpriced = append(unpriced, u.Model)
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\n",
						clip(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens)
					continue
				}
				c := cost.Cost(u.InputTokens, u.OutputTokens)
				total += c
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					clip(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, formatCost(c))
			}

			label := "TOTAL"
			if len(unpriced) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Fprintf(w, "%s\t\t\t\t%s\n", label, formatCost(total))
			if err := w.Flush(); err != nil {
				return err
			}

			if len(unpriced) > 0 {
				fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
			}
			return nil
		})
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "filter by purpose (concept-extract, stem-gen, distractor-gen)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
