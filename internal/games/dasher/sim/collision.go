package sim

import "github.com/vovakirdan/dasher/internal/core"

// PaddedHitbox returns an obstacle's collision rectangle, inset by pad on
// every side so near misses are forgiven.
func PaddedHitbox(a AnimData, pad float64) core.RectF {
	return a.Hitbox().Inset(pad)
}

// CollisionEngine tests the player against the obstacle field and latches
// the result for the lifetime of a run.
type CollisionEngine struct {
	Padding   float64
	triggered bool
}

// NewCollisionEngine creates an engine with an unset latch.
func NewCollisionEngine(padding float64) CollisionEngine {
	return CollisionEngine{Padding: padding}
}

// Collides reports whether the player overlaps any padded obstacle this frame.
// It does not touch the latch.
func (c *CollisionEngine) Collides(player AnimData, obstacles []AnimData) bool {
	hitbox := player.Hitbox()
	for _, o := range obstacles {
		if hitbox.Intersects(PaddedHitbox(o, c.Padding)) {
			return true
		}
	}
	return false
}

// Evaluate ORs this frame's collision into the latch and returns the latch.
// Once true it stays true.
func (c *CollisionEngine) Evaluate(player AnimData, obstacles []AnimData) bool {
	if c.Collides(player, obstacles) {
		c.triggered = true
	}
	return c.triggered
}

// Triggered returns the latched collision flag.
func (c *CollisionEngine) Triggered() bool {
	return c.triggered
}
