package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette for the scene. Layers get darker the further back they are.
const (
	ColorDefault Color = iota
	ColorFarLayer
	ColorMidLayer
	ColorNearLayer
	ColorGround
	ColorPlayer
	ColorObstacle
	ColorFinish
	ColorHUD
	ColorWin
	ColorLose
)
