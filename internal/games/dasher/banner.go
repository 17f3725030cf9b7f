package dasher

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

const defaultEase = "outBounce"

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"outCubic":  ease.OutCubic,
	"outBack":   ease.OutBack,
	"outBounce": ease.OutBounce,
}

// banner is the end-of-run message. It drops in from above the screen;
// progress goes from 0 (hidden above the top edge) to 1 (centered).
type banner struct {
	title    string
	subtitle string
	color    core.Color
	tween    *gween.Tween
	progress float32
}

func newBanner(state sim.RunState, cfg config.BannerConfig) *banner {
	b := &banner{
		title:    "Game Over!",
		subtitle: "Press R to restart",
		color:    core.ColorLose,
	}
	if state == sim.Won {
		b.title = "You win!"
		b.color = core.ColorWin
	}

	if cfg.Duration <= 0 {
		b.progress = 1
		return b
	}
	fn, ok := easings[cfg.Ease]
	if !ok {
		fn = easings[defaultEase]
	}
	b.tween = gween.New(0, 1, float32(cfg.Duration), fn)
	return b
}

func (b *banner) update(dt float64) {
	if b.tween == nil {
		return
	}
	val, done := b.tween.Update(float32(dt))
	b.progress = val
	if done {
		b.progress = 1
		b.tween = nil
	}
}

// settled reports whether the banner reached its resting place.
func (b *banner) settled() bool {
	return b.tween == nil
}
