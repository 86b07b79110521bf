package cmd

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/spf13/cobra"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Inspect concept bank files",
}

var conceptsListCmd = &cobra.Command{
	Use:   "list <bank.yaml>",
	Short: "List the concepts in a bank file (optionally filtered by difficulty)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficultyVal, _ := cmd.Flags().GetString("difficulty")

		bank, err := concept.LoadBank(args[0])
		if err != nil {
			return err
		}

		concepts := bank.Concepts
		if difficultyVal != "" {
			want, err := concept.ParseDifficulty(difficultyVal)
			if err != nil {
				return err
			}
			var filtered []concept.Concept
			for _, c := range concepts {
				if c.Difficulty == want {
					filtered = append(filtered, c)
				}
			}
			if len(filtered) == 0 {
				return fmt.Errorf("no %s concepts in %s", want, args[0])
			}
			concepts = filtered
		}

		// Header.
		fmt.Printf("%-26s  %-34s  %-6s  %-20s  %s\n",
			"ID", "Name", "Diff", "Formula", "Prereqs")
		fmt.Println(strings.Repeat("─", 110))

		for _, c := range concepts {
			name := c.Name
			if len(name) > 34 {
				name = name[:31] + "..."
			}
			formula := c.Formula
			if len(formula) > 20 {
				formula = formula[:17] + "..."
			}
			fmt.Printf("%-26s  %-34s  %-6s  %-20s  %s\n",
				c.ID, name, c.Difficulty, formula, strings.Join(c.Prerequisites, ", "))
		}

		fmt.Printf("\n%d concepts (bank %q, format %s)\n",
			len(concepts), bank.Name, bank.FormatVersion)
		return nil
	},
}

var conceptsCheckCmd = &cobra.Command{
	Use:   "check <bank.yaml>",
	Short: "Validate a bank file: format version, fields, prerequisites, cycles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := concept.LoadBank(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d concepts, format %s\n", len(bank.Concepts), bank.FormatVersion)
		return nil
	},
}

func init() {
	conceptsListCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium or hard)")

	conceptsCmd.AddCommand(conceptsListCmd)
	conceptsCmd.AddCommand(conceptsCheckCmd)
}
