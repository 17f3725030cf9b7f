// Package sim implements the per-frame simulation of a Dasher run:
// sprite frame cycling, gravity and jumps, parallax scrolling, the obstacle
// field and padded collision. It has no rendering or terminal dependencies;
// the platform feeds it elapsed time and input and draws what it exposes.
package sim

import "github.com/vovakirdan/dasher/internal/core"

// AnimData is one animated, positioned entity (the player or an obstacle).
type AnimData struct {
	// Rect is the frame rectangle on the sprite sheet. Rect.X is the offset
	// of the displayed frame (Frame * Rect.W); W and H never change.
	Rect core.RectF
	// Pos is the top-left world position.
	Pos core.Vec2
	// Frame is the animation frame index, always in [0, maxFrame].
	Frame int
	// UpdateTime is the number of seconds each frame is displayed.
	UpdateTime float64
	// RunningTime accumulates seconds since the last frame advance.
	RunningTime float64
}

// Advance accumulates dt and moves to the next frame once UpdateTime has
// elapsed. It advances at most one frame per call however large dt is, so
// a long stall skips animation instead of fast-forwarding it.
// A non-positive UpdateTime never advances.
func (a AnimData) Advance(dt float64, maxFrame int) AnimData {
	a.RunningTime += dt
	if a.UpdateTime <= 0 || a.RunningTime < a.UpdateTime {
		return a
	}

	a.RunningTime = 0
	a.Rect.X = float64(a.Frame) * a.Rect.W
	a.Frame++
	if a.Frame > maxFrame {
		a.Frame = 0
	}
	return a
}

// Hitbox returns the entity's unpadded frame rectangle at its world position.
func (a AnimData) Hitbox() core.RectF {
	return a.Rect.At(a.Pos)
}
