package dasher

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

// Visual characters for rendering
const (
	PlayerBody    = '█'
	PlayerAirLegs = '▀'
	GroundChar    = '═'
	FinishChar    = '┃'
	FinishFlag    = '⚑'
)

var (
	// Obstacle glyph per animation frame; frames past the end wrap around.
	obstacleGlyphs = []rune("✶✷✸✹✺✹✸✷")
	// Running leg pairs per animation frame.
	legGlyphs = [][2]rune{{'╱', '╲'}, {'│', '╲'}, {'╲', '│'}, {'╲', '╱'}, {'│', '╱'}, {'╱', '│'}}
)

// skyline describes the silhouette of a parallax layer as a fraction of
// the viewport height: base + amp*|sin(peaks*pi*u)| where u is the phase
// inside one tile. Both ends of a tile are at base height, so the seam
// between two tiles cannot be seen.
type skyline struct {
	base  float64
	amp   float64
	peaks float64
}

// Back to front: distant hills are tall and smooth, near ones low and busy.
var skylines = [sim.LayerCount]skyline{
	{base: 0.45, amp: 0.25, peaks: 3},
	{base: 0.25, amp: 0.15, peaks: 5},
	{base: 0.08, amp: 0.10, peaks: 8},
}

var layerColors = [sim.LayerCount]core.Color{core.ColorFarLayer, core.ColorMidLayer, core.ColorNearLayer}

// MinScreenW and MinScreenH are the smallest terminal the scene fits in.
const (
	MinScreenW = 20
	MinScreenH = 6
)

// viewport maps world coordinates to screen cells. Row 0 is the HUD and
// the last row is the ground; the world fills the rows in between.
type viewport struct {
	w, h   int
	sx, sy float64
}

func newViewport(dst *core.Screen, p sim.Params) viewport {
	v := viewport{w: dst.Width(), h: dst.Height()}
	v.sx = float64(v.w) / p.WorldWidth
	v.sy = float64(v.h-2) / p.WorldHeight
	return v
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y*v.sy))
}

func (v viewport) groundRow() int {
	return v.h - 1
}

// bounds is the screen area in cells.
func (v viewport) bounds() core.Rect {
	return core.NewRect(0, 0, v.w, v.h)
}

// cells returns the screen rectangle covered by a world rectangle. It is
// at least one cell in each direction so tiny sprites stay visible.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := max(x0+1, v.col(r.Right()))
	y1 := max(y0+1, v.row(r.Bottom()))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current run to the screen. Before the first Reset it
// only clears the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}
	if g.run == nil {
		return
	}

	frame := g.run.Snapshot()
	v := newViewport(dst, g.run.Params())

	for i, l := range frame.Layers {
		g.drawLayer(dst, v, i, l)
	}
	dst.DrawHLine(0, v.groundRow(), v.w, GroundChar, core.ColorGround)
	g.drawFinish(dst, v, frame.FinishLine)
	for _, o := range frame.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawPlayer(dst, v, frame.Player, frame.Grounded)
	g.drawHUD(dst)

	switch {
	case g.banner != nil:
		g.drawBanner(dst)
	case g.paused:
		drawMessage(dst, (dst.Height()-5)/2, "PAUSED", "Press P to resume", core.ColorHUD)
	}
}

// drawLayer fills one parallax layer's skyline from the ground up.
func (g *Game) drawLayer(dst *core.Screen, v viewport, i int, l sim.ScrollLayer) {
	s := skylines[i]
	viewH := float64(v.h - 2)
	for cx := 0; cx < v.w; cx++ {
		x := (float64(cx) + 0.5) / v.sx
		u := tilePhase(l, x)
		rows := int(viewH * (s.base + s.amp*math.Abs(math.Sin(s.peaks*math.Pi*u))))
		for dy := 1; dy <= rows; dy++ {
			dst.SetColored(cx, v.groundRow()-dy, g.glyphs[i], layerColors[i])
		}
	}
}

// tilePhase returns where world x falls inside a layer tile, in [0, 1).
// Tiles repeat every TileSpan starting at the first tile, so the two copies
// from Tiles line up exactly and wider worlds keep repeating them.
func tilePhase(l sim.ScrollLayer, x float64) float64 {
	first, _ := l.Tiles()
	span := l.TileSpan()
	u := math.Mod(x-first, span) / span
	if u < 0 {
		u++
	}
	return u
}

func (g *Game) drawFinish(dst *core.Screen, v viewport, finishLine float64) {
	x := v.col(finishLine)
	if !v.bounds().Contains(x, 1) {
		return
	}
	for y := 1; y < v.groundRow(); y++ {
		dst.SetColored(x, y, FinishChar, core.ColorFinish)
	}
	dst.SetColored(x+1, 1, FinishFlag, core.ColorFinish)
}

// drawObstacle skips obstacles that are entirely off screen; most of the
// field is still to the right of the window.
func drawObstacle(dst *core.Screen, v viewport, o sim.AnimData) {
	r := v.cells(o.Hitbox())
	if !r.Intersects(v.bounds()) {
		return
	}
	glyph := obstacleGlyphs[o.Frame%len(obstacleGlyphs)]
	dst.DrawRect(r, glyph, core.ColorObstacle)
}

func drawPlayer(dst *core.Screen, v viewport, p sim.AnimData, grounded bool) {
	r := v.cells(p.Hitbox())
	dst.DrawRect(r, PlayerBody, core.ColorPlayer)

	legs := r.Bottom() - 1
	if !grounded {
		// Legs tucked while in the air.
		dst.DrawHLine(r.X, legs, r.W, PlayerAirLegs, core.ColorPlayer)
		return
	}
	pair := legGlyphs[p.Frame%len(legGlyphs)]
	for x := r.X; x < r.Right(); x++ {
		leg := pair[0]
		if x-r.X >= r.W/2 {
			leg = pair[1]
		}
		if (x-r.X)%2 == 1 {
			leg = ' '
		}
		dst.SetColored(x, legs, leg, core.ColorPlayer)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dist := math.Max(0, g.run.DistanceToFinish())
	text := fmt.Sprintf(" Distance %5.0f  Time %5.1fs ", dist, g.run.Elapsed())
	dst.DrawTextColored(1, 0, text, core.ColorHUD)

	barW := dst.Width() - utf8.RuneCountInString(text) - 6
	if barW < 4 {
		return
	}
	filled := core.Clamp(int(g.run.Progress()*float64(barW)), 0, barW)
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barW-filled) + "]"
	dst.DrawTextColored(dst.Width()-barW-3, 0, bar, core.ColorHUD)
}

func (g *Game) drawBanner(dst *core.Screen) {
	const boxH = 5
	start := -boxH
	end := (dst.Height() - boxH) / 2
	y := start + int(math.Round(float64(g.banner.progress)*float64(end-start)))

	subtitle := fmt.Sprintf("%.1fs  |  %s", g.run.Elapsed(), g.banner.subtitle)
	drawMessage(dst, y, g.banner.title, subtitle, g.banner.color)
}

// drawMessage draws a horizontally centered message box with its top at row y.
func drawMessage(dst *core.Screen, y int, title, subtitle string, c core.Color) {
	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleW, subtitleW) + 4
	box := core.NewRect((dst.Width()-boxW)/2, y, boxW, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-titleW)/2, y+1, title, c)
	dst.DrawTextColored(box.X+(boxW-subtitleW)/2, y+3, subtitle, core.ColorHUD)
}
