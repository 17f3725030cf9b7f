package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dasher/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorFarLayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorMidLayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorNearLayer: lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorFinish:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorWin:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorLose:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
