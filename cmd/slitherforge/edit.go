package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"slitherforge/level"
	"slitherforge/levelfile"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit a level in the full-screen terminal editor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// The editor owns the terminal, so route logs away from it.
		logOut := io.Discard
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(logOut, nil)))

		var (
			lvl      *level.Level
			path     string
			warnings []level.Violation
		)
		if len(args) == 1 {
			path = args[0]
			if _, statErr := os.Stat(path); statErr == nil {
				lvl, warnings, err = levelfile.Load(path)
				if err != nil {
					return err
				}
			}
		}
		if lvl == nil {
			lvl = level.New(cfg.DefaultWidth, cfg.DefaultHeight)
		}

		t, err := newTUI(lvl, path, cfg)
		if err != nil {
			return err
		}
		if len(warnings) > 0 {
			t.setStatus(fmt.Sprintf("repaired %d pairing violation(s) on load", len(warnings)), statusWarn)
		}
		return t.run()
	},
}
