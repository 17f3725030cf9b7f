// Package config provides YAML-based configuration loading for Dasher,
// with embedded defaults and difficulty presets.
package config

import "github.com/vovakirdan/dasher/internal/games/dasher/sim"

// DasherConfig contains all configuration for a Dasher run.
// Every length is in world pixels and every duration in seconds.
type DasherConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    SpriteConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Layers    []LayerConfig  `yaml:"layers"`
	Banner    BannerConfig   `yaml:"banner"`
}

// WorldConfig defines the simulated window. Height is also the floor.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines gravity and the jump impulse.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // pixels/s², downward
	JumpVelocity float64 `yaml:"jump_velocity"` // pixels/s, negative = up
}

// SpriteConfig defines a sprite sheet's frame geometry and cadence.
type SpriteConfig struct {
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
	MaxFrame    int     `yaml:"max_frame"`
	UpdateTime  float64 `yaml:"update_time"` // seconds per frame
}

// ObstacleConfig defines the obstacle field.
type ObstacleConfig struct {
	Sprite   SpriteConfig `yaml:"sprite"`
	Count    int          `yaml:"count"`
	Spacing  float64      `yaml:"spacing"`  // distance between consecutive obstacles
	Velocity float64      `yaml:"velocity"` // pixels/s, negative = leftward
	Padding  float64      `yaml:"padding"`  // hitbox inset on every side
}

// LayerConfig defines one parallax layer, listed back to front.
type LayerConfig struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"`
	Width float64 `yaml:"width"`
	Glyph string  `yaml:"glyph"` // rune used to draw the layer skyline
}

// BannerConfig defines the end-of-run message animation.
type BannerConfig struct {
	Duration float64 `yaml:"duration"` // seconds for the banner to slide in
	Ease     string  `yaml:"ease"`     // easing name: linear, outCubic, outBack, outBounce
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. The empty string means
// "keep the loaded config as is".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// Params converts the config into simulation parameters. Layers beyond
// sim.LayerCount are ignored; missing ones stay zero and fail validation.
func (c DasherConfig) Params() sim.Params {
	p := sim.Params{
		WorldWidth:       c.World.Width,
		WorldHeight:      c.World.Height,
		Gravity:          c.Physics.Gravity,
		JumpVelocity:     c.Physics.JumpVelocity,
		Player:           c.Player.params(),
		Obstacle:         c.Obstacles.Sprite.params(),
		ObstacleCount:    c.Obstacles.Count,
		ObstacleSpacing:  c.Obstacles.Spacing,
		ObstacleVelocity: c.Obstacles.Velocity,
		Padding:          c.Obstacles.Padding,
	}
	for i := 0; i < sim.LayerCount && i < len(c.Layers); i++ {
		l := c.Layers[i]
		p.Layers[i] = sim.LayerParams{Name: l.Name, Speed: l.Speed, Width: l.Width}
	}
	return p
}

func (s SpriteConfig) params() sim.SpriteParams {
	return sim.SpriteParams{
		FrameWidth:  s.FrameWidth,
		FrameHeight: s.FrameHeight,
		MaxFrame:    s.MaxFrame,
		UpdateTime:  s.UpdateTime,
	}
}
