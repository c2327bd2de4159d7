// cmd/knapbench/list.go
package knapbench

import (
	"github.com/spf13/cobra"
)

// listCmd groups the read-only inspection commands. It writes nothing to the
// output directory.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Inspect knapbench commands and benchmark datasets",
	Long:  `The 'list' command groups read-only helpers: 'list datasets' shows which solver results files are present in the results directory and the make target that produces each missing one, and 'list commands' prints the knapbench command tree. Run without a subcommand it only prints help.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
