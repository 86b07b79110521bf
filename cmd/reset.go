package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the run database (stored questions, run events, LLM usage)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("Nothing to reset: %s does not exist.\n", path)
			return nil
		}

		if !force {
			fmt.Printf("This deletes %s and every stored run. Re-run with --force to confirm.\n", path)
			return nil
		}

		// WAL mode leaves companion files next to the database.
		for _, p := range []string{path, path + "-wal", path + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Printf("Deleted %s\n", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database")
}
