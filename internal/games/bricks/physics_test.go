package bricks

import (
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

var testArena = Arena{Width: 800, Height: 600}

func testPaddle() *Paddle {
	p := &Paddle{Width: 100, Height: 20}
	p.Recenter(testArena.Width)
	return p
}

func TestStepBallSideWallFlipsOnce(t *testing.T) {
	b := &Ball{Pos: core.Vec{X: 785, Y: 300}, Vel: core.Vec{X: 5, Y: -5}, Radius: 12}
	p := testPaddle()

	StepBall(b, p, testArena, 5)
	if b.Vel.X != -5 {
		t.Fatalf("Vel.X after wall = %g, expected -5", b.Vel.X)
	}
	if b.Pos.X != 780 {
		t.Errorf("Pos.X = %g, expected 780", b.Pos.X)
	}

	StepBall(b, p, testArena, 5)
	if b.Vel.X != -5 {
		t.Errorf("Vel.X flipped again on the following tick: %g", b.Vel.X)
	}
}

func TestStepBallLeftWall(t *testing.T) {
	b := &Ball{Pos: core.Vec{X: 14, Y: 300}, Vel: core.Vec{X: -3, Y: 3}, Radius: 12}

	StepBall(b, testPaddle(), testArena, 5)
	if b.Vel.X != 3 {
		t.Errorf("Vel.X = %g, expected 3", b.Vel.X)
	}
}

func TestStepBallTopWall(t *testing.T) {
	b := &Ball{Pos: core.Vec{X: 400, Y: 15}, Vel: core.Vec{X: 3, Y: -5}, Radius: 12}

	out := StepBall(b, testPaddle(), testArena, 5)
	if out != StepMoved {
		t.Errorf("outcome = %v, expected StepMoved", out)
	}
	if b.Vel.Y != 5 {
		t.Errorf("Vel.Y = %g, expected 5", b.Vel.Y)
	}
	if b.Pos != (core.Vec{X: 403, Y: 20}) {
		t.Errorf("Pos = %+v, expected (403,20)", b.Pos)
	}
}

func TestStepBallCatchSteering(t *testing.T) {
	speeds := []core.Vec{{X: 3, Y: 3}, {X: 5, Y: 5}, {X: 8, Y: 8}}
	tests := []struct {
		name string
		x    float64
		dx   float64
	}{
		{"left edge", 350, -5},
		{"center", 400, 0},
		{"right edge", 450, 5},
	}

	for _, tt := range tests {
		for _, v := range speeds {
			b := &Ball{Pos: core.Vec{X: tt.x, Y: 586}, Vel: v, Radius: 12}

			out := StepBall(b, testPaddle(), testArena, 5)
			if out != StepCaught {
				t.Errorf("%s speed %g: outcome = %v, expected StepCaught", tt.name, v.X, out)
				continue
			}
			if b.Vel.X != tt.dx {
				t.Errorf("%s speed %g: dx = %g, expected %g", tt.name, v.X, b.Vel.X, tt.dx)
			}
			if b.Vel.Y != -v.Y {
				t.Errorf("%s speed %g: dy = %g, expected %g", tt.name, v.X, b.Vel.Y, -v.Y)
			}
		}
	}
}

func TestStepBallMissLeavesBall(t *testing.T) {
	start := core.Vec{X: 200, Y: 586}
	b := &Ball{Pos: start, Vel: core.Vec{X: 3, Y: 3}, Radius: 12}

	out := StepBall(b, testPaddle(), testArena, 5)
	if out != StepMissed {
		t.Fatalf("outcome = %v, expected StepMissed", out)
	}
	if b.Pos != start {
		t.Errorf("Pos = %+v, expected unchanged %+v", b.Pos, start)
	}
}

func TestPaddleFollow(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"centered", 400, 350},
		{"clamped left", 10, 0},
		{"clamped right", 795, 700},
		{"left edge ignored", 0, 350},
		{"right edge ignored", 800, 350},
		{"outside ignored", -40, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPaddle()
			p.Follow(tt.x, testArena.Width)
			if p.X != tt.want {
				t.Errorf("Follow(%g): X = %g, expected %g", tt.x, p.X, tt.want)
			}
		})
	}
}

func TestPaddleRect(t *testing.T) {
	p := testPaddle()
	r := p.Rect(testArena.Height)
	if r.X != 350 || r.Y != 580 || r.W != 100 || r.H != 20 {
		t.Errorf("Rect = %+v, expected {350 580 100 20}", r)
	}
}
