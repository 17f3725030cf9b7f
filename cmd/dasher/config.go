package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config file
search and the difficulty preset, as YAML. The output can be saved to
~/.dasher/configs/dasher.yaml and edited.

Examples:
  dasher config
  dasher config --difficulty hard > ~/.dasher/configs/dasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, err := newLogger(io.Discard)
	exitOnError("creating logger", err)

	cfg, err := loadConfig(logger)
	exitOnError("loading config", err)

	out, err := cfg.Marshal()
	exitOnError("encoding config", err)
	fmt.Fprint(cmd.OutOrStdout(), string(out))
}
