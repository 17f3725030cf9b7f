package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dasher/internal/games/dasher/script"
)

var (
	flagScript    string
	flagFrames    int
	flagJumpStart int
	flagJumpEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay an input script without a terminal",
	Long: `Run the simulation headlessly and print the outcome as YAML.

Input comes from a script file or from the jump flags. A script looks like:

  dt: 0.05
  frames: 600
  jumps: [31, 61]
  jump_every: {start: 91, period: 30}

Without --script the time step is 1/fps.

Examples:
  dasher sim --script ./run.yaml
  dasher sim --jump-start 92 --jump-every 90
  dasher sim --fps 20 --jump-start 31 --jump-every 30 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to an input script YAML")
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().IntVar(&flagJumpStart, "jump-start", 0, "First frame to jump on")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump every N frames after --jump-start (0 = never)")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	exitOnError("creating logger", err)

	cfg, err := loadConfig(logger)
	exitOnError("loading config", err)

	s, err := simScript()
	exitOnError("loading script", err)

	res, err := script.Replay(cfg.Params(), s, logger)
	exitOnError("replaying", err)

	out, err := yaml.Marshal(res)
	exitOnError("encoding result", err)
	fmt.Fprint(cmd.OutOrStdout(), string(out))
}

// simScript loads --script or builds a script from the jump flags.
func simScript() (script.Script, error) {
	if flagScript != "" {
		return script.Load(flagScript)
	}
	if flagFPS <= 0 {
		return script.Script{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	s := script.Script{DT: 1 / float64(flagFPS), Frames: flagFrames}
	if flagJumpEvery > 0 {
		s.JumpEvery = &script.Every{Start: flagJumpStart, Period: flagJumpEvery}
	}
	return s, s.Validate()
}
