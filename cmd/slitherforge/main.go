// slitherforge is a grid-based puzzle-level authoring tool: slither
// paths paired with holes, edited interactively in the terminal or
// checked and transformed from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slitherforge",
	Short: "Author slither puzzle levels",
	Long: `slitherforge edits grid-based puzzle levels: colored slither paths
paired one-to-one with colored holes. Levels are stored as JSON files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(newCmd, checkCmd, resizeCmd, editCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
