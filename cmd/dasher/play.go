package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher"
	"github.com/vovakirdan/dasher/internal/platform/tui"
)

var flagFixedStep bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up/W - Jump (only from the ground)
  P/Esc      - Pause
  R          - Restart (after the run ended)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower, fewer and more widely spaced obstacles
  normal - The configured values
  hard   - Faster and more obstacles with tighter hitboxes

Examples:
  dasher play
  dasher play --difficulty hard
  dasher play --fixed-step --fps 30
  dasher play --config ./my-dasher.yaml --log-file dasher.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFixedStep, "fixed-step", false, "Advance 1/fps seconds per tick instead of wall-clock time")
}

func runPlay(cmd *cobra.Command, args []string) {
	exitOnError("playing", play())
}

// play runs one terminal session. Every exit path returns so the log file
// is closed before the process exits.
func play() error {
	// The alt screen owns the terminal, so logs go to a file or nowhere.
	out, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		FixedStep: flagFixedStep,
	}

	game, err := dasher.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if err := tui.Run(game, runtime, logger); err != nil {
		logger.Error("run failed", "error", err)
		return err
	}
	return nil
}

// openLogOutput opens path for appending, or discards when path is empty.
// The returned close func is always safe to call.
func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
