package main

import (
	"fmt"

	"pagepad/internal/config"
	"pagepad/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pagepad",
		Short: "Zero-pad page numbers in scanned book filenames",
		Long: `pagepad renames page images such as 1_1.jpg to 1_001.jpg so that
sorting by name matches page order.

Recognized conventions, tried in order:
  <part>_<page>.<ext>         1_1.jpg        -> 1_001.jpg
  <name> <year>-<page>.<ext>  GBV 1950-1.png -> GBV 1950-001.png
  <name>-<page>.<ext>         something-1.png -> something-001.png`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg = loaded
			log.SetDebug(debug || cfg.Settings.Debug)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pagepad/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print diagnostics to stderr")

	rootCmd.AddCommand(NewTreeCmd())
	rootCmd.AddCommand(NewDirCmd())
	rootCmd.AddCommand(NewProposeCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// loadConfig reads --config strictly, so a mistyped path fails. The default
// location falls back to built-in settings when it cannot be used.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadRequiredConfigFile(cfgFile)
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Using default settings. Run 'pagepad config init' to create a config file.")
		return config.New(), nil
	}
	return loaded, nil
}
