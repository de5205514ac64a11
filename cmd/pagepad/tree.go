package main

import (
	"pagepad/internal/errors"
	"pagepad/internal/rename"
	"pagepad/internal/report"

	"github.com/spf13/cobra"
)

// NewTreeCmd creates the tree command
func NewTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [root]",
		Short: "Pad page numbers in every book directory under root",
		Long: `Process each non-hidden subdirectory of root, in name order, as one book.
Only files directly inside a book directory are renamed.
Without an argument the root from the config file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cfg.Root
			if len(args) > 0 {
				root = args[0]
			}
			if root == "" {
				return errors.NewConfigError("no root directory given", "root", errors.ConfigNotSet, nil)
			}

			console := report.NewConsole(cmd.OutOrStdout())
			engine, err := rename.NewWithConfig(cfg, console)
			if err != nil {
				return err
			}

			console.Banner()
			total, err := engine.ProcessTree(root)
			if err != nil {
				return err
			}
			console.TreeSummary(total)
			return nil
		},
	}
}
