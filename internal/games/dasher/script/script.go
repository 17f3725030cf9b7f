// Package script replays a Dasher run without a terminal. A script fixes
// the time step and the frames on which jump is pressed, so a replay is
// fully deterministic.
package script

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

// Script is a recorded input sequence.
//
//	dt: 0.05
//	frames: 600
//	jumps: [31, 61]
//	jump_every: {start: 91, period: 30}
type Script struct {
	DT        float64 `yaml:"dt"`     // seconds per frame
	Frames    int     `yaml:"frames"` // upper bound on steps
	Jumps     []int   `yaml:"jumps"`  // frame indexes, 0-based
	JumpEvery *Every  `yaml:"jump_every,omitempty"`
}

// Every presses jump on frame Start and every Period frames after it.
type Every struct {
	Start  int `yaml:"start"`
	Period int `yaml:"period"`
}

// Result is the outcome of a replay.
type Result struct {
	State      sim.RunState `yaml:"state"`
	Frames     int          `yaml:"frames"`
	Elapsed    float64      `yaml:"elapsed"`
	JumpsSent  int          `yaml:"jumps_sent"`
	PlayerX    float64      `yaml:"player_x"`
	PlayerY    float64      `yaml:"player_y"`
	FinishLine float64      `yaml:"finish_line"`
	Collided   bool         `yaml:"collided"`
}

// Load reads a script from a YAML file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks that the script can be replayed.
func (s Script) Validate() error {
	if s.DT <= 0 {
		return fmt.Errorf("dt must be positive, got %v", s.DT)
	}
	if s.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", s.Frames)
	}
	for _, f := range s.Jumps {
		if f < 0 {
			return fmt.Errorf("jump frame must not be negative, got %d", f)
		}
	}
	if s.JumpEvery != nil {
		if s.JumpEvery.Start < 0 {
			return fmt.Errorf("jump_every.start must not be negative, got %d", s.JumpEvery.Start)
		}
		if s.JumpEvery.Period <= 0 {
			return fmt.Errorf("jump_every.period must be positive, got %d", s.JumpEvery.Period)
		}
	}
	return nil
}

// JumpAt reports whether jump is pressed on the given frame.
func (s Script) JumpAt(frame int) bool {
	if slices.Contains(s.Jumps, frame) {
		return true
	}
	e := s.JumpEvery
	return e != nil && frame >= e.Start && (frame-e.Start)%e.Period == 0
}

// Replay runs the script against a fresh run built from p. It stops on the
// first terminal state or after s.Frames steps. A nil logger discards.
func Replay(p sim.Params, s Script, logger *log.Logger) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	run, err := sim.NewRun(p)
	if err != nil {
		return Result{}, err
	}

	var res Result
	state := run.State()
	for i := 0; i < s.Frames && !state.Terminal(); i++ {
		jump := s.JumpAt(i)
		if jump {
			res.JumpsSent++
			logger.Debug("jump", "frame", i, "grounded", run.Grounded, "y", run.Player.Pos.Y)
		}
		state = run.Step(s.DT, sim.Input{Jump: jump})
	}

	res.State = state
	res.Frames = run.Frames()
	res.Elapsed = run.Elapsed()
	res.PlayerX = run.Player.Pos.X
	res.PlayerY = run.Player.Pos.Y
	res.FinishLine = run.Field.FinishLine
	res.Collided = run.Collided()

	logger.Info("replay finished", "state", res.State, "frames", res.Frames, "elapsed", res.Elapsed)
	return res, nil
}
