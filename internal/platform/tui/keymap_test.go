package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w jumps", runeKey("w"), core.ActionJump},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"r disabled while running", runeKey("r"), core.ActionNone},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	keys := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapFinished(t *testing.T) {
	keys := DefaultKeyMap()
	keys.setFinished(true)

	if got := keys.Action(runeKey("r")); got != core.ActionRestart {
		t.Errorf("Action(r) = %v after the run ended, expected Restart", got)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeySpace}); got != core.ActionNone {
		t.Errorf("Action(space) = %v after the run ended, expected None", got)
	}
	if got := keys.Action(runeKey("q")); got != core.ActionQuit {
		t.Errorf("Action(q) = %v, expected Quit", got)
	}

	keys.setFinished(false)
	if got := keys.Action(runeKey("r")); got != core.ActionNone {
		t.Errorf("Action(r) = %v on a new run, expected None", got)
	}
}
