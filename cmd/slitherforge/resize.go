package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"slitherforge/level"
	"slitherforge/levelfile"
)

var resizeApply bool

var resizeCmd = &cobra.Command{
	Use:   "resize <file> <width> <height>",
	Short: "Preview or apply a grid resize",
	Long: `resize shows what a grid-dimension change would remove: holes and
slither segments left out of bounds, and slithers deleted entirely.
Nothing is written unless --apply is given.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		w, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("width %q is not a number", args[1])
		}
		h, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("height %q is not a number", args[2])
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		l, err := levelfile.Decode(data)
		if err != nil {
			return err
		}

		impact := level.PreviewResize(l, w, h)
		if impact.Empty() {
			okColor.Printf("%s: %dx%d -> %dx%d removes nothing\n", path, l.Width, l.Height, w, h)
		} else {
			warnColor.Printf("%s: %dx%d -> %dx%d\n", path, l.Width, l.Height, w, h)
			for _, si := range impact.Slithers {
				if si.Entire {
					badColor.Printf("  - slither %s (%s) deleted entirely\n", si.Slither.ID, si.Slither.Color)
				} else {
					warnColor.Printf("  - slither %s (%s) loses %d segment(s): %v\n",
						si.Slither.ID, si.Slither.Color, len(si.OutOfRange), si.OutOfRange)
				}
			}
			for _, hole := range impact.RemovedHoles {
				warnColor.Printf("  - hole at %v (%s) removed\n", hole.Pos, hole.Color)
			}
		}

		if !resizeApply {
			fmt.Println("dry run; pass --apply to commit")
			return nil
		}

		if err := level.Resize(l, w, h); err != nil {
			return err
		}
		if err := levelfile.Save(l, path); err != nil {
			return err
		}
		okColor.Printf("resized and rewrote %s\n", path)
		return nil
	},
}

func init() {
	resizeCmd.Flags().BoolVar(&resizeApply, "apply", false, "write the resized level back")
}
