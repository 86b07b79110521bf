package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped with -ldflags on release builds. Dev builds fall
// back to module build info.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mcqgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mcqgen", resolveVersion())
	},
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
