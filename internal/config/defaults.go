package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the hardcoded default configuration. It matches
// defaults/dasher.yaml and is used when the embedded file cannot be parsed.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		World: WorldConfig{
			Width:  720,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:      1000,
			JumpVelocity: -600,
		},
		Player: SpriteConfig{
			FrameWidth:  128,
			FrameHeight: 128,
			MaxFrame:    5,
			UpdateTime:  1.0 / 12.0,
		},
		Obstacles: ObstacleConfig{
			Sprite: SpriteConfig{
				FrameWidth:  100,
				FrameHeight: 100,
				MaxFrame:    7,
				UpdateTime:  1.0 / 16.0,
			},
			Count:    10,
			Spacing:  300,
			Velocity: -200,
			Padding:  50,
		},
		Layers: []LayerConfig{
			{Name: "far", Speed: 20, Width: 256, Glyph: "░"},
			{Name: "mid", Speed: 40, Width: 256, Glyph: "▒"},
			{Name: "near", Speed: 80, Width: 352, Glyph: "▓"},
		},
		Banner: BannerConfig{
			Duration: 0.6,
			Ease:     "outBounce",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
