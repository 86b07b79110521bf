package cmd

import (
	"github.com/arjun/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcqgen",
	Short: "Calculus MCQ generator with symbolic answer verification",
	Long: `mcqgen generates multiple-choice integration questions from chapter
text or existing question sets, verifies every answer symbolically, and
builds distractors from a taxonomy of real student errors.`,

	// main prints the error once; keep cobra from printing it again
	// along with the usage text.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "path to the SQLite database (overrides MCQGEN_DB)")

	for _, c := range []*cobra.Command{
		runCmd,
		previewCmd,
		reviewCmd,
		exportCmd,
		statsCmd,
		conceptsCmd,
		llmCmd,
		resetCmd,
		versionCmd,
	} {
		rootCmd.AddCommand(c)
	}
}

// resolveDBPath picks the database location: the --db flag wins, then
// MCQGEN_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
