package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dasher/internal/core"
)

// Game is what the platform drives once per tick.
type Game interface {
	Title() string
	Reset(runtime core.RuntimeConfig) error
	Step(in core.InputFrame, dt float64) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// helpHeight is the number of rows below the game screen used by the help line.
const helpHeight = 1

// Model is the Bubble Tea model for a Dasher session.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	err        error
}

// NewModel creates a new Bubble Tea model for a game that has already been reset.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "outcome", m.gameState.Outcome, "frames", m.gameState.Frames)
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize resizes the screen buffer. The run keeps going: it lives in
// world coordinates and is only scaled when drawn.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.config, m.lastTick, now)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Finished {
		if err := m.game.Reset(m.config); err != nil {
			m.err = fmt.Errorf("failed to restart: %w", err)
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.keys.setFinished(false)
		m.inputFrame.Clear()
		return m, tickCmd(m.config)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if result.Ended {
		m.keys.setFinished(true)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run resets the game and runs it in the terminal until the player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if err := game.Reset(cfg); err != nil {
		return err
	}
	model := NewModel(game, cfg, logger)
	model.logger.Info("session started", "game", game.Title(), "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
