package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pagepad/internal/errors"
	"pagepad/internal/rename"
	"pagepad/internal/report"
	"pagepad/internal/watch"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates a command for watch mode
func NewWatchCmd() *cobra.Command {
	var scan bool

	cmd := &cobra.Command{
		Use:   "watch [directory...]",
		Short: "Pad new scans as they appear in book directories",
		Long: `Watch book directories and rename new page images as soon as they are
created. Files are handled one at a time. Without arguments the directories
from the config file are watched. Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := args
			if len(dirs) == 0 {
				dirs = cfg.Watch.Directories
			}
			if len(dirs) == 0 {
				return errors.NewConfigError("no directories to watch", "watch.directories", errors.ConfigNotSet, nil)
			}

			console := report.NewConsole(cmd.OutOrStdout())
			engine, err := rename.NewWithConfig(cfg, console)
			if err != nil {
				return err
			}

			if scan {
				for _, dir := range dirs {
					console.StartDirectory(dir)
					renamed, err := engine.ProcessDirectory(dir)
					if err != nil {
						return err
					}
					console.FinishDirectory(dir, renamed)
				}
			}

			watcher, err := watch.New(engine.IsImage)
			if err != nil {
				return err
			}
			defer watcher.Stop()

			for _, dir := range dirs {
				if err := watcher.AddDirectory(dir); err != nil {
					return err
				}
			}
			if err := watcher.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %d director(y/ies). Press Ctrl+C to stop.\n", len(dirs))
			return watch.Run(ctx, watcher, engine)
		},
	}

	cmd.Flags().BoolVar(&scan, "scan", true, "pad existing files before watching")

	return cmd
}
