// Package dasher adapts the Dasher simulation to the terminal platform:
// it owns one run, turns platform input into simulation input, and draws
// the run into a core.Screen.
package dasher

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

// Game drives one Dasher run at a time.
type Game struct {
	cfg     config.DasherConfig
	logger  *log.Logger
	run     *sim.RunContext
	runtime core.RuntimeConfig
	paused  bool
	banner  *banner
	glyphs  [sim.LayerCount]rune
}

// New creates a game for the given configuration. A nil logger discards
// everything.
func New(cfg config.DasherConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{cfg: cfg, logger: logger}
	for i := range g.glyphs {
		g.glyphs[i] = []rune(cfg.Layers[i].Glyph)[0]
	}
	if _, ok := easings[cfg.Banner.Ease]; !ok {
		logger.Warn("unknown banner easing, using default", "ease", cfg.Banner.Ease, "default", defaultEase)
	}
	return g, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dapper Dasher"
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	run, err := sim.NewRun(g.cfg.Params())
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}

	g.run = run
	g.runtime = runtime
	g.paused = false
	g.banner = nil

	g.logger.Info("run started",
		"obstacles", run.Field.Len(),
		"finish", run.Field.FinishLine,
		"fixedStep", runtime.FixedStep)
	return nil
}

// Step advances the run by dt seconds of wall or fixed time.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.run == nil {
		return core.StepResult{State: g.State()}
	}
	if g.run.State().Terminal() {
		if g.banner != nil {
			g.banner.update(dt)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	state := g.run.Step(dt, sim.Input{Jump: in.Has(core.ActionJump)})
	if !state.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.banner = newBanner(state, g.cfg.Banner)
	g.logger.Info("run ended",
		"state", state,
		"elapsed", g.elapsed(),
		"frames", g.run.Frames(),
		"distance", g.run.DistanceToFinish())
	return core.StepResult{State: g.State(), Ended: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{Outcome: sim.Playing.String()}
	}
	state := g.run.State()
	return core.GameState{
		Outcome:  state.String(),
		Finished: state.Terminal(),
		Paused:   g.paused,
		Elapsed:  g.elapsed(),
		Frames:   g.run.Frames(),
	}
}

// Snapshot returns the current simulation frame, or the zero Frame
// before the first Reset.
func (g *Game) Snapshot() sim.Frame {
	if g.run == nil {
		return sim.Frame{}
	}
	return g.run.Snapshot()
}

func (g *Game) elapsed() time.Duration {
	return time.Duration(g.run.Elapsed() * float64(time.Second))
}
