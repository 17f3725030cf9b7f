// dasher is a side-scrolling runner for the terminal: jump over the
// obstacles until the finish line reaches you.
//
// Usage:
//
//	dasher play              - Play in the terminal
//	dasher sim               - Replay an input script headlessly
//	dasher config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Log destination while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dapper Dasher - a side-scrolling runner in your terminal",
	Long: `Dapper Dasher is a side-scrolling runner. The player stays in the
middle of the screen while obstacles slide in from the right; jump over
every one of them until the finish line arrives.

Available commands:
  play     - Play in the terminal
  sim      - Replay an input script without a terminal
  config   - Print the effective configuration

Examples:
  dasher play
  dasher play --difficulty hard --fixed-step
  dasher sim --jump-start 92 --jump-every 90
  dasher sim --script ./run.yaml
  dasher config --difficulty easy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the structured logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
		Level:           level,
	}), nil
}

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result.
func loadConfig(logger *log.Logger) (config.DasherConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.DasherConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, source, err := config.LoadDasher(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if preset != "" {
		config.ApplyDasherPreset(&cfg, preset)
		logger.Debug("difficulty applied", "preset", preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// exitOnError prints err and exits with status 1.
func exitOnError(prefix string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", prefix, err)
	os.Exit(1)
}
