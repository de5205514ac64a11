package main

import (
	"pagepad/internal/rename"
	"pagepad/internal/report"

	"github.com/spf13/cobra"
)

// NewDirCmd creates the dir command
func NewDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir <directory>",
		Short: "Pad page numbers in a single book directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			console := report.NewConsole(cmd.OutOrStdout())
			engine, err := rename.NewWithConfig(cfg, console)
			if err != nil {
				return err
			}

			renamed, err := engine.ProcessDirectory(args[0])
			if err != nil {
				return err
			}
			console.DirectorySummary(renamed)
			return nil
		},
	}
}
