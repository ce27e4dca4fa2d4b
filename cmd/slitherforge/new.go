package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slitherforge/config"
	"slitherforge/level"
	"slitherforge/levelfile"
)

var (
	newWidth  int
	newHeight int
	newForce  bool
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty level file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !newForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		w, h := newWidth, newHeight
		if w == 0 {
			w = cfg.DefaultWidth
		}
		if h == 0 {
			h = cfg.DefaultHeight
		}
		if w < cfg.MinGridSize || w > cfg.MaxGridSize || h < cfg.MinGridSize || h > cfg.MaxGridSize {
			return fmt.Errorf("grid %dx%d outside policy [%d,%d]", w, h, cfg.MinGridSize, cfg.MaxGridSize)
		}

		if err := levelfile.Save(level.New(w, h), path); err != nil {
			return err
		}
		fmt.Printf("Created %s (%dx%d)\n", path, w, h)
		return nil
	},
}

func init() {
	newCmd.Flags().IntVar(&newWidth, "width", 0, "grid width (default from config)")
	newCmd.Flags().IntVar(&newHeight, "height", 0, "grid height (default from config)")
	newCmd.Flags().BoolVar(&newForce, "force", false, "overwrite an existing file")
}

func loadConfig() (*config.Config, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
