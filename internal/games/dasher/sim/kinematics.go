package sim

import "github.com/vovakirdan/dasher/internal/core"

// IsGrounded reports whether an entity of the given height touches or is
// below the floor. groundHeight is the world y of the floor.
func IsGrounded(pos core.Vec2, rectHeight, groundHeight float64) bool {
	return pos.Y >= groundHeight-rectHeight
}

// Kinematics applies gravity and jump impulses to a single actor.
// Positive velocity points down.
type Kinematics struct {
	Gravity      float64 // pixels/s², positive
	JumpVelocity float64 // pixels/s impulse, negative
	GroundHeight float64 // world y of the floor
}

// UpdateVelocity runs the grounded/airborne branch for one frame and then
// the jump check. A grounded actor has its velocity zeroed; an airborne one
// accelerates by Gravity*dt. A jump adds JumpVelocity once, and only when
// the actor is grounded this frame, so a jump in the landing frame counts
// while one in mid-air is dropped.
func (k Kinematics) UpdateVelocity(actor AnimData, velocity float64, jump bool, dt float64) (float64, bool) {
	grounded := IsGrounded(actor.Pos, actor.Rect.H, k.GroundHeight)
	if grounded {
		velocity = 0
	} else {
		velocity += k.Gravity * dt
	}

	if jump && grounded {
		velocity += k.JumpVelocity
	}
	return velocity, grounded
}

// Integrate moves the actor vertically by velocity*dt.
func (k Kinematics) Integrate(actor AnimData, velocity, dt float64) AnimData {
	actor.Pos.Y += velocity * dt
	return actor
}
