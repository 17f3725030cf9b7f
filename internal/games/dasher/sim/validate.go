package sim

import "fmt"

// Validation error codes.
const (
	CodeWorldSize     = "WORLD_SIZE"
	CodeGravity       = "GRAVITY"
	CodeJumpVelocity  = "JUMP_VELOCITY"
	CodeFrameSize     = "FRAME_SIZE"
	CodeMaxFrame      = "MAX_FRAME"
	CodeUpdateTime    = "UPDATE_TIME"
	CodeObstacleCount = "OBSTACLE_COUNT"
	CodeSpacing       = "OBSTACLE_SPACING"
	CodePadding       = "PADDING"
	CodeLayer         = "LAYER"
)

// ValidationError describes a configuration NewRun refuses to start with.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every parameter a run depends on. Degenerate values are
// configuration faults; the frame loop never re-checks them.
func (p Params) Validate() error {
	if p.WorldWidth <= 0 || p.WorldHeight <= 0 {
		return invalid(CodeWorldSize, "world size must be positive, got %vx%v", p.WorldWidth, p.WorldHeight)
	}
	if p.Gravity <= 0 {
		return invalid(CodeGravity, "gravity must be positive, got %v", p.Gravity)
	}
	if p.JumpVelocity >= 0 {
		return invalid(CodeJumpVelocity, "jump velocity must be negative (upward), got %v", p.JumpVelocity)
	}
	if err := p.Player.validate("player"); err != nil {
		return err
	}
	if err := p.Obstacle.validate("obstacle"); err != nil {
		return err
	}
	if p.ObstacleCount < 1 {
		return invalid(CodeObstacleCount, "need at least one obstacle, got %d", p.ObstacleCount)
	}
	if p.ObstacleSpacing < 0 {
		return invalid(CodeSpacing, "obstacle spacing must not be negative, got %v", p.ObstacleSpacing)
	}
	if p.Padding < 0 {
		return invalid(CodePadding, "padding must not be negative, got %v", p.Padding)
	}
	if 2*p.Padding > p.Obstacle.FrameWidth || 2*p.Padding > p.Obstacle.FrameHeight {
		return invalid(CodePadding, "padding %v inverts the %vx%v obstacle hitbox",
			p.Padding, p.Obstacle.FrameWidth, p.Obstacle.FrameHeight)
	}
	for i, l := range p.Layers {
		if l.Width <= 0 {
			return invalid(CodeLayer, "layer %d (%s) width must be positive, got %v", i, l.Name, l.Width)
		}
		if l.Speed < 0 {
			return invalid(CodeLayer, "layer %d (%s) speed must not be negative, got %v", i, l.Name, l.Speed)
		}
	}
	return nil
}

func (s SpriteParams) validate(name string) error {
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return invalid(CodeFrameSize, "%s frame size must be positive, got %vx%v", name, s.FrameWidth, s.FrameHeight)
	}
	if s.MaxFrame < 0 {
		return invalid(CodeMaxFrame, "%s max frame must not be negative, got %d", name, s.MaxFrame)
	}
	if s.UpdateTime <= 0 {
		return invalid(CodeUpdateTime, "%s update time must be positive, got %v", name, s.UpdateTime)
	}
	return nil
}
