package cmd

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/config"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/extract"
	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/pipeline"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate questions for a single concept (no database)",
	Long: `Run one concept through the full pipeline and print the result.

This is a stateless developer tool: no database, no events, no snapshots.
Useful for evaluating question quality for a formula before a full run.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("formula", "", "Integrand in plain notation, e.g. \"x^2\" or \"sin(2*x)\" (required)")
	previewCmd.Flags().String("name", "", "Concept name shown to the generator (default derived from the formula)")
	previewCmd.Flags().String("difficulty", "easy", "Concept difficulty: easy, medium or hard")
	previewCmd.Flags().Int("count", 1, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("formula")
}

func runPreview(cmd *cobra.Command, args []string) error {
	formula, _ := cmd.Flags().GetString("formula")
	name, _ := cmd.Flags().GetString("name")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	difficulty, err := concept.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}
	if name == "" {
		name = "Preview: integral of " + formula
	}
	if count < 1 {
		count = 1
	}

	concepts := make([]concept.Concept, 0, count)
	for i := 1; i <= count; i++ {
		c := concept.Concept{
			ID:         fmt.Sprintf("preview-%d", i),
			Name:       name,
			Formula:    formula,
			Difficulty: difficulty,
		}
		if err := c.Validate(); err != nil {
			return err
		}
		concepts = append(concepts, c)
	}

	// No EventRepo: requests are not logged anywhere.
	provider, err := llm.NewPipelineProviderFromEnv(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := config.Default()
	cfg.BatchSize = count
	p := pipeline.New(cfg, pipeline.Deps{
		Extractor:   extract.FromBank(&concept.Bank{Concepts: concepts}),
		Generator:   stemgen.New(provider, stemgen.DefaultConfig()),
		Distractors: distractor.New(provider, distractor.DefaultConfig()),
	})

	fmt.Printf("Generating %d question(s) for %s...\n", count, formula)
	out, err := p.Run(cmd.Context(), "")
	if err != nil {
		return err
	}

	if len(out.Items) == 0 {
		fmt.Println("No questions survived validation.")
		for _, f := range out.Metrics.Failures {
			fmt.Printf("  %s: %s\n", f.ItemID, f.Note)
		}
		return nil
	}

	doc := export.Markdown(export.FromAssembled(out.Items), export.MarkdownOptions{
		Title:               "Preview: " + formula,
		IncludeExplanations: true,
	})
	fmt.Println()
	fmt.Println(doc)

	fmt.Println()
	fmt.Println(strings.Repeat("─", 60))
	for _, item := range out.Items {
		flag := ""
		if item.WasCorrected {
			flag = "  (answer corrected)"
		}
		fmt.Printf("Q%d: score %.2f%s\n", item.QuestionNumber, item.Score, flag)
	}
	return nil
}
