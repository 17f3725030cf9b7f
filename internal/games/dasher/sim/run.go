package sim

import "github.com/vovakirdan/dasher/internal/core"

// LayerCount is the number of parallax layers, back to front.
const LayerCount = 3

// SpriteParams describes one sprite sheet's frame geometry and cadence.
type SpriteParams struct {
	FrameWidth  float64
	FrameHeight float64
	MaxFrame    int
	UpdateTime  float64 // seconds per frame
}

// LayerParams describes one parallax layer.
type LayerParams struct {
	Name  string
	Speed float64
	Width float64
}

// Params is everything a run needs, in world units.
type Params struct {
	WorldWidth  float64
	WorldHeight float64 // also the floor height

	Gravity      float64
	JumpVelocity float64

	Player   SpriteParams
	Obstacle SpriteParams

	ObstacleCount    int
	ObstacleSpacing  float64
	ObstacleVelocity float64
	Padding          float64

	Layers [LayerCount]LayerParams
}

// Input is what the platform samples for one frame.
type Input struct {
	Jump bool // jump was pressed this frame
}

// RunContext is the complete state of one run. It is mutated in place by
// Step and never shared with another run.
type RunContext struct {
	params Params
	kin    Kinematics

	Player    AnimData
	Field     ObstacleField
	Layers    [LayerCount]ScrollLayer
	Velocity  float64
	Grounded  bool
	collision CollisionEngine

	state       RunState
	elapsed     float64
	frames      int
	startFinish float64
}

// NewRun validates p and lays out a fresh run: the player centered
// horizontally on the floor, obstacles starting at the right edge of the
// world.
func NewRun(p Params) (*RunContext, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	player := AnimData{
		Rect: core.NewRectF(0, 0, p.Player.FrameWidth, p.Player.FrameHeight),
		Pos: core.Vec2{
			X: p.WorldWidth/2 - p.Player.FrameWidth/2,
			Y: p.WorldHeight - p.Player.FrameHeight,
		},
		UpdateTime: p.Player.UpdateTime,
	}

	proto := AnimData{
		Rect:       core.NewRectF(0, 0, p.Obstacle.FrameWidth, p.Obstacle.FrameHeight),
		UpdateTime: p.Obstacle.UpdateTime,
	}
	field := NewObstacleField(p.ObstacleCount, proto, p.WorldWidth, p.ObstacleSpacing,
		p.WorldHeight, p.ObstacleVelocity, p.Obstacle.MaxFrame)

	r := &RunContext{
		params: p,
		kin: Kinematics{
			Gravity:      p.Gravity,
			JumpVelocity: p.JumpVelocity,
			GroundHeight: p.WorldHeight,
		},
		Player:      player,
		Field:       field,
		Grounded:    true,
		collision:   NewCollisionEngine(p.Padding),
		state:       Playing,
		startFinish: field.FinishLine,
	}
	for i, lp := range p.Layers {
		r.Layers[i] = ScrollLayer{Name: lp.Name, Speed: lp.Speed, Width: lp.Width}
	}
	return r, nil
}

// Step advances the run by dt seconds and returns the resulting state.
// Once the run is Lost or Won the simulation is frozen and Step only
// returns the terminal state.
func (r *RunContext) Step(dt float64, in Input) RunState {
	if r.state.Terminal() {
		return r.state
	}

	for i := range r.Layers {
		r.Layers[i].Advance(dt)
	}

	r.Velocity, r.Grounded = r.kin.UpdateVelocity(r.Player, r.Velocity, in.Jump, dt)
	r.Field.AdvanceAll(dt)
	r.Player = r.kin.Integrate(r.Player, r.Velocity, dt)

	// Legs only cycle while running on the floor.
	if r.Grounded {
		r.Player = r.Player.Advance(dt, r.params.Player.MaxFrame)
	}
	r.Field.Animate(dt)

	collided := r.collision.Evaluate(r.Player, r.Field.Obstacles)
	r.state = r.state.Resolve(collided, r.Player.Pos.X, r.Field.FinishLine)

	r.elapsed += dt
	r.frames++
	return r.state
}

// State returns the current run state.
func (r *RunContext) State() RunState {
	return r.state
}

// Collided returns the sticky collision flag.
func (r *RunContext) Collided() bool {
	return r.collision.Triggered()
}

// Elapsed returns the simulated seconds since the run started.
func (r *RunContext) Elapsed() float64 {
	return r.elapsed
}

// Frames returns the number of steps taken.
func (r *RunContext) Frames() int {
	return r.frames
}

// Params returns the parameters the run was built with.
func (r *RunContext) Params() Params {
	return r.params
}

// DistanceToFinish returns how far the finish line is ahead of the player.
// It is negative once the player passed it.
func (r *RunContext) DistanceToFinish() float64 {
	return r.Field.FinishLine - r.Player.Pos.X
}

// Progress returns the fraction of the starting distance covered, in [0, 1].
func (r *RunContext) Progress() float64 {
	total := r.startFinish - r.Player.Pos.X
	if total <= 0 {
		return 1
	}
	p := 1 - r.DistanceToFinish()/total
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Frame is a read-only view of the run for the renderer.
// Obstacles aliases the run's storage and must not be modified.
type Frame struct {
	Player     AnimData
	Obstacles  []AnimData
	Layers     [LayerCount]ScrollLayer
	FinishLine float64
	Grounded   bool
	State      RunState
}

// Snapshot returns what the renderer needs to draw this frame.
func (r *RunContext) Snapshot() Frame {
	return Frame{
		Player:     r.Player,
		Obstacles:  r.Field.Obstacles,
		Layers:     r.Layers,
		FinishLine: r.Field.FinishLine,
		Grounded:   r.Grounded,
		State:      r.state,
	}
}
