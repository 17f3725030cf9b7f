package sim_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

func obstacleProto() sim.AnimData {
	return sim.AnimData{
		Rect:       core.NewRectF(0, 0, 100, 100),
		UpdateTime: 1.0 / 16.0,
	}
}

func TestNewObstacleFieldLayout(t *testing.T) {
	f := sim.NewObstacleField(10, obstacleProto(), 720, 300, 480, -200, 7)

	if f.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", f.Len())
	}
	for i, o := range f.Obstacles {
		if o.Pos.X != 720+float64(i)*300 {
			t.Errorf("obstacle %d at x=%v, expected %v", i, o.Pos.X, 720+float64(i)*300)
		}
		if o.Pos.Y != 380 {
			t.Errorf("obstacle %d at y=%v, expected 380", i, o.Pos.Y)
		}
		if o.Frame != 0 || o.RunningTime != 0 {
			t.Errorf("obstacle %d starts at frame %d, running %v", i, o.Frame, o.RunningTime)
		}
	}
	if f.FinishLine != 3420 {
		t.Errorf("FinishLine = %v, expected 3420 (last obstacle)", f.FinishLine)
	}
}

func TestAdvanceAllMovesObstacle(t *testing.T) {
	f := sim.NewObstacleField(1, obstacleProto(), 500, 300, 480, -200, 7)
	f.AdvanceAll(0.1)

	if got := f.Obstacles[0].Pos.X; math.Abs(got-480) > 1e-9 {
		t.Errorf("Pos.X = %v, expected 480", got)
	}
}

func TestFinishLineRecedesInLockstep(t *testing.T) {
	f := sim.NewObstacleField(3, obstacleProto(), 1400, 300, 480, -200, 7)
	if f.FinishLine != 2000 {
		t.Fatalf("FinishLine = %v, expected 2000", f.FinishLine)
	}

	for i := 0; i < 10; i++ {
		f.AdvanceAll(0.1)
	}

	if math.Abs(f.FinishLine-1800) > 1e-9 {
		t.Errorf("FinishLine = %v, expected 1800", f.FinishLine)
	}
	last := f.Obstacles[len(f.Obstacles)-1].Pos.X
	if math.Abs(last-f.FinishLine) > 1e-9 {
		t.Errorf("last obstacle at %v drifted from finish line %v", last, f.FinishLine)
	}
}

func TestAdvanceAllKeepsSpacing(t *testing.T) {
	f := sim.NewObstacleField(5, obstacleProto(), 720, 300, 480, -200, 7)
	for i := 0; i < 250; i++ {
		f.AdvanceAll(1.0 / 60.0)
	}

	for i := 1; i < f.Len(); i++ {
		gap := f.Obstacles[i].Pos.X - f.Obstacles[i-1].Pos.X
		if math.Abs(gap-300) > 1e-6 {
			t.Errorf("gap %d = %v, expected 300", i, gap)
		}
	}
}

func TestAnimateUsesPerObstacleTimers(t *testing.T) {
	f := sim.NewObstacleField(2, obstacleProto(), 720, 300, 480, -200, 7)
	f.Obstacles[1].RunningTime = 0.05

	f.Animate(0.03)

	if f.Obstacles[0].Frame != 0 {
		t.Errorf("obstacle 0 Frame = %d, expected 0", f.Obstacles[0].Frame)
	}
	if f.Obstacles[1].Frame != 1 {
		t.Errorf("obstacle 1 Frame = %d, expected 1", f.Obstacles[1].Frame)
	}
}

func TestAnimateWrapsAtMaxFrame(t *testing.T) {
	f := sim.NewObstacleField(1, obstacleProto(), 720, 300, 480, -200, 7)
	for i := 0; i < 8; i++ {
		f.Animate(1.0 / 16.0)
	}
	if f.Obstacles[0].Frame != 0 {
		t.Errorf("Frame = %d after 8 cadences, expected 0", f.Obstacles[0].Frame)
	}
}
