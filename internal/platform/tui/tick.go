// Package tui provides the Bubble Tea integration for Dasher.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/core"
)

// maxTickDelta caps the time fed to the simulation after a stall, such as
// a suspended terminal, so the run does not jump ahead.
const maxTickDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the configured rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds to simulate for a tick arriving at now.
// Fixed-step runs and the first tick use exactly 1/TickRate.
func frameDelta(cfg core.RuntimeConfig, last, now time.Time) float64 {
	if cfg.FixedStep || last.IsZero() {
		rate := cfg.TickRate
		if rate <= 0 {
			rate = 60
		}
		return 1 / float64(rate)
	}
	d := now.Sub(last)
	switch {
	case d < 0:
		d = 0
	case d > maxTickDelta:
		d = maxTickDelta
	}
	return d.Seconds()
}
