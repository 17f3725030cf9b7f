package sim_test

import (
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

var testKin = sim.Kinematics{Gravity: 1000, JumpVelocity: -600, GroundHeight: 480}

func actorAt(y float64) sim.AnimData {
	return sim.AnimData{
		Rect:       core.NewRectF(0, 0, 128, 128),
		Pos:        core.Vec2{X: 296, Y: y},
		UpdateTime: 1.0 / 12.0,
	}
}

func TestIsGrounded(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"exactly on floor", 352, true},
		{"below floor", 360, true},
		{"just above floor", 351.9, false},
		{"high in the air", 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sim.IsGrounded(core.Vec2{X: 0, Y: tc.y}, 128, 480)
			if got != tc.expected {
				t.Errorf("IsGrounded(y=%v) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestGroundedZeroesVelocity(t *testing.T) {
	for _, prior := range []float64{0, 250, -42, 900} {
		v, grounded := testKin.UpdateVelocity(actorAt(352), prior, false, 1.0/60.0)
		if !grounded {
			t.Fatalf("prior=%v: expected grounded", prior)
		}
		if v != 0 {
			t.Errorf("prior=%v: velocity = %v, expected 0", prior, v)
		}
	}
}

func TestAirborneAppliesGravity(t *testing.T) {
	v, grounded := testKin.UpdateVelocity(actorAt(200), -300, false, 0.1)

	if grounded {
		t.Error("expected airborne")
	}
	if v != -200 {
		t.Errorf("velocity = %v, expected -200", v)
	}
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	withJump, _ := testKin.UpdateVelocity(actorAt(200), -300, true, 0.1)
	withoutJump, _ := testKin.UpdateVelocity(actorAt(200), -300, false, 0.1)

	if withJump != withoutJump {
		t.Errorf("airborne jump changed velocity: %v vs %v", withJump, withoutJump)
	}
}

func TestJumpFromRest(t *testing.T) {
	actor := actorAt(352)
	dt := 1.0 / 60.0

	v, grounded := testKin.UpdateVelocity(actor, 0, true, dt)
	if !grounded {
		t.Fatal("expected grounded before the jump")
	}
	if v != -600 {
		t.Errorf("velocity = %v, expected -600", v)
	}

	actor = testKin.Integrate(actor, v, dt)
	if sim.IsGrounded(actor.Pos, actor.Rect.H, 480) {
		t.Errorf("still grounded at y=%v after one frame", actor.Pos.Y)
	}
}

func TestJumpAcceptedOnLandingFrame(t *testing.T) {
	// The actor sank slightly below the floor with downward speed left over.
	v, grounded := testKin.UpdateVelocity(actorAt(355), 580, true, 1.0/60.0)

	if !grounded {
		t.Fatal("expected grounded")
	}
	if v != -600 {
		t.Errorf("velocity = %v, expected -600", v)
	}
}

func TestIntegrateAlwaysMoves(t *testing.T) {
	actor := testKin.Integrate(actorAt(352), 100, 0.5)
	if actor.Pos.Y != 402 {
		t.Errorf("Pos.Y = %v, expected 402 (no floor snapping)", actor.Pos.Y)
	}
	if actor.Pos.X != 296 {
		t.Errorf("Pos.X = %v, expected unchanged 296", actor.Pos.X)
	}
}

func TestFullJumpReturnsToFloor(t *testing.T) {
	actor := actorAt(352)
	dt := 1.0 / 60.0
	v := 0.0
	jumped := false

	airborneFrames := 0
	for i := 0; i < 200; i++ {
		var grounded bool
		v, grounded = testKin.UpdateVelocity(actor, v, i == 0, dt)
		actor = testKin.Integrate(actor, v, dt)
		if !grounded {
			airborneFrames++
		}
		if i > 0 && grounded {
			jumped = true
			break
		}
	}

	if !jumped {
		t.Fatal("actor never landed")
	}
	// 2*600/1000 s of flight at 60 fps.
	if airborneFrames < 70 || airborneFrames > 74 {
		t.Errorf("airborne for %d frames, expected about 72", airborneFrames)
	}
}
