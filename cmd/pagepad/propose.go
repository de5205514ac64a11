package main

import (
	"fmt"

	"pagepad/internal/pattern"

	"github.com/spf13/cobra"
)

// NewProposeCmd creates the propose command. It never touches the filesystem.
func NewProposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose <filename>...",
		Short: "Show the padded name for each filename without renaming",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			matcher := pattern.New(cfg.Settings.PadWidth)
			out := cmd.OutOrStdout()
			for _, name := range args {
				p, ok := matcher.Match(name)
				switch {
				case !ok:
					fmt.Fprintf(out, "%s: no match\n", name)
				case p.Name == name:
					fmt.Fprintf(out, "%s: already padded (%s)\n", name, p.Rule)
				default:
					fmt.Fprintf(out, "%s -> %s (%s)\n", name, p.Name, p.Rule)
				}
			}
		},
	}
}
