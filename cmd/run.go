package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/config"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/extract"
	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/pipeline"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [source-file]",
	Short: "Generate verified MCQs from source material",
	Long: `Run the full generation pipeline: extract concepts from the source file
(or load them from a YAML bank), generate question stems in batches, verify
every answer symbolically, build distractors from the error taxonomy, and
assemble the final question set.

The exam sheet is printed to stdout unless --output names a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	defaults := config.Default()
	runCmd.Flags().Int("batch-size", defaults.BatchSize, "Concepts per stem generation batch")
	runCmd.Flags().Int("distractors", defaults.DistractorsPerItem, "Distractors per question (1-3)")
	runCmd.Flags().StringP("source", "t", defaults.Source, "Input kind: chapter or mcqs")
	runCmd.Flags().String("variable", defaults.Variable, "Integration variable")
	runCmd.Flags().StringSlice("difficulty", nil, "Only keep these difficulties (easy,medium,hard)")
	runCmd.Flags().Bool("explanations", defaults.IncludeExplanations, "Include the answer-key explanations in exports")
	runCmd.Flags().Int("keep-runs", defaults.KeepRuns, "Stored runs to retain after this one (0 keeps all)")

	runCmd.Flags().String("bank", "", "Load concepts from a YAML bank instead of extracting")
	runCmd.Flags().StringP("output", "o", "", "Write the exam sheet to this file (default stdout)")
	runCmd.Flags().String("json", "", "Also write the run artifact as JSON to this file")
	runCmd.Flags().String("title", "Generated MCQs: Integration", "Title for the exported document")
	runCmd.Flags().Bool("no-store", false, "Run without recording events or items")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	bankPath, _ := cmd.Flags().GetString("bank")
	if bankPath == "" && len(args) == 0 {
		return fmt.Errorf("provide a source file or --bank")
	}

	noStore, _ := cmd.Flags().GetBool("no-store")
	var events store.EventRepo
	var snapshots store.SnapshotRepo
	if !noStore {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		events = st.EventRepo()
		snapshots = st.SnapshotRepo()
	}

	provider, err := llm.NewPipelineProviderFromEnv(ctx, events)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	var sourceText string
	var extractor extract.Extractor
	if bankPath != "" {
		bank, err := concept.LoadBank(bankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}
		fmt.Printf("Loaded %d concepts from bank %q\n", len(bank.Concepts), bank.Name)
		extractor = extract.FromBank(bank)
	} else {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		sourceText = string(raw)
		ecfg := extract.DefaultConfig()
		ecfg.Source = extract.Source(cfg.Source)
		extractor = extract.New(provider, ecfg)
	}

	p := pipeline.New(cfg, pipeline.Deps{
		Extractor:   extractor,
		Generator:   stemgen.New(provider, stemgen.DefaultConfig()),
		Distractors: distractor.New(provider, distractor.DefaultConfig()),
		Events:      events,
		Snapshots:   snapshots,
	})

	out, err := p.Run(ctx, sourceText)
	if err != nil {
		return err
	}
	printRunSummary(out)

	title, _ := cmd.Flags().GetString("title")
	questions := export.FromAssembled(out.Items)
	doc := export.Markdown(questions, export.MarkdownOptions{
		Title:               title,
		IncludeExplanations: cfg.IncludeExplanations,
	})

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		fmt.Println()
		fmt.Println(doc)
	} else {
		if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Printf("Exported %d questions to %s\n", len(out.Items), outputPath)
	}

	if jsonPath, _ := cmd.Flags().GetString("json"); jsonPath != "" {
		raw, err := export.JSON(export.New(title, out.RunID, questions), cfg.IncludeExplanations)
		if err != nil {
			return fmt.Errorf("encode run JSON: %w", err)
		}
		if err := os.WriteFile(jsonPath, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", jsonPath, err)
		}
		fmt.Printf("Wrote run JSON to %s\n", jsonPath)
	}
	return nil
}

func printRunSummary(out *pipeline.Outcome) {
	m := out.Metrics
	fmt.Printf("Run %s finished in %s\n", out.RunID, m.Elapsed.Round(time.Millisecond))
	fmt.Printf("  extracted:  %d concepts", m.Extracted)
	if m.Filtered > 0 {
		fmt.Printf(" (%d filtered by difficulty)", m.Filtered)
	}
	fmt.Println()
	fmt.Printf("  generated:  %d stems in %d batches\n", m.Generated, m.Batches)
	fmt.Printf("  validated:  %d", m.Validated)
	if m.Corrected > 0 {
		fmt.Printf(" (%d answers corrected)", m.Corrected)
	}
	fmt.Println()
	fmt.Printf("  assembled:  %d questions\n", m.Assembled)
	if n := m.TotalDropped(); n > 0 {
		fmt.Printf("  dropped:    %d", n)
		for _, stage := range []pipeline.Stage{pipeline.StageExtract, pipeline.StageGenerate, pipeline.StageValidate, pipeline.StageDistract} {
			if c := m.Dropped[stage]; c > 0 {
				fmt.Printf("  %s=%d", stage, c)
			}
		}
		fmt.Println()
	}
	if len(m.Difficulty) > 0 {
		fmt.Printf("  difficulty:")
		for _, d := range concept.AllDifficulties() {
			if c := m.Difficulty[d]; c > 0 {
				fmt.Printf("  %s=%d", d, c)
			}
		}
		fmt.Println()
	}
	if m.Usage.Calls > 0 {
		fmt.Printf("  llm usage:  %d calls, %d in / %d out tokens, ~$%.4f\n",
			m.Usage.Calls, m.Usage.InputTokens, m.Usage.OutputTokens, m.Usage.CostUSD)
	}
	for _, f := range m.Failures {
		label := "dropped"
		if f.Corrected {
			label = "corrected"
		}
		fmt.Printf("  validation %s %s: %s\n", label, f.ItemID, f.Note)
	}
}
