package sim

// ObstacleField owns the run's obstacles and the finish line that recedes
// with them. The obstacle count is fixed when the field is built.
type ObstacleField struct {
	Obstacles  []AnimData
	FinishLine float64 // world x the player must reach to win
	Velocity   float64 // shared horizontal velocity, negative = leftward
	MaxFrame   int
}

// NewObstacleField lays out count obstacles from startX, spacing apart, all
// resting on the floor. The finish line starts at the last obstacle.
func NewObstacleField(count int, proto AnimData, startX, spacing, groundHeight, velocity float64, maxFrame int) ObstacleField {
	obstacles := make([]AnimData, count)
	for i := range obstacles {
		o := proto
		o.Frame = 0
		o.RunningTime = 0
		o.Rect.X = 0
		o.Pos.X = startX + float64(i)*spacing
		o.Pos.Y = groundHeight - proto.Rect.H
		obstacles[i] = o
	}

	f := ObstacleField{
		Obstacles: obstacles,
		Velocity:  velocity,
		MaxFrame:  maxFrame,
	}
	if count > 0 {
		f.FinishLine = obstacles[count-1].Pos.X
	}
	return f
}

// AdvanceAll moves every obstacle and the finish line by Velocity*dt.
// Relative spacing never changes.
func (f *ObstacleField) AdvanceAll(dt float64) {
	dx := f.Velocity * dt
	for i := range f.Obstacles {
		f.Obstacles[i].Pos.X += dx
	}
	f.FinishLine += dx
}

// Animate cycles every obstacle's frame. Each obstacle keeps its own timer.
func (f *ObstacleField) Animate(dt float64) {
	for i := range f.Obstacles {
		f.Obstacles[i] = f.Obstacles[i].Advance(dt, f.MaxFrame)
	}
}

// Len returns the number of obstacles.
func (f *ObstacleField) Len() int {
	return len(f.Obstacles)
}
