package sim

// TileCopies is how many layer widths one tile of a parallax layer spans.
// The wrap threshold and the distance between the two drawn copies both use
// it; changing one without the other makes the seam visible.
const TileCopies = 2

// AdvanceOffset scrolls a layer offset left by speed*dt and resets it to 0
// once a whole tile (layerWidth*TileCopies) has gone by.
func AdvanceOffset(offset, dt, speed, layerWidth float64) float64 {
	offset -= speed * dt
	if offset <= -layerWidth*TileCopies {
		offset = 0
	}
	return offset
}

// ScrollLayer is one parallax background layer.
type ScrollLayer struct {
	Name   string
	Speed  float64 // pixels/s; faster layers look closer
	Width  float64 // layer image width in world units
	Offset float64
}

// Advance scrolls the layer by one frame.
func (l *ScrollLayer) Advance(dt float64) {
	l.Offset = AdvanceOffset(l.Offset, dt, l.Speed, l.Width)
}

// TileSpan is the visual width covered by one copy of the layer.
func (l ScrollLayer) TileSpan() float64 {
	return l.Width * TileCopies
}

// Tiles returns the world x of the two copies the renderer must draw.
func (l ScrollLayer) Tiles() (float64, float64) {
	return l.Offset, l.Offset + l.TileSpan()
}
