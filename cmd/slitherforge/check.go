package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"slitherforge/level"
	"slitherforge/levelfile"
)

var checkRepair bool

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed, color.Bold)
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report pairing violations in a level file",
	Long: `check validates a level file against the pairing invariant: every
slither has exactly one hole, no hole is orphaned, none duplicated.
With --repair the violations are fixed deterministically and the file
is rewritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		l, err := levelfile.Decode(data)
		if err != nil {
			return err
		}

		violations := level.Validate(l)
		if len(violations) == 0 {
			okColor.Printf("%s: ok (%d slithers, %d holes, %dx%d)\n",
				path, len(l.Slithers), len(l.Holes), l.Width, l.Height)
			return nil
		}

		badColor.Printf("%s: %d violation(s)\n", path, len(violations))
		for _, v := range violations {
			warnColor.Printf("  - %s\n", v)
		}

		if !checkRepair {
			return fmt.Errorf("level has pairing violations")
		}

		level.Repair(l)
		if err := levelfile.Save(l, path); err != nil {
			return err
		}
		okColor.Printf("repaired and rewrote %s\n", path)
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkRepair, "repair", false, "repair violations and rewrite the file")
}
