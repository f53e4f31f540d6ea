package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Arena is the playfield bounding all motion. The origin is the top-left corner.
type Arena struct {
	Width  float64
	Height float64
}

// Ball is the ball state in arena units.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Displacement per tick
	Radius float64
}

// Next returns where the ball would be after one tick at its current velocity.
func (b *Ball) Next() core.Vec {
	return b.Pos.Add(b.Vel)
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Paddle is the player's paddle, resting on the bottom edge of the arena.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle's box for an arena of the given height.
func (p *Paddle) Rect(arenaHeight float64) core.RectF {
	return core.RectF{X: p.X, Y: arenaHeight - p.Height, W: p.Width, H: p.Height}
}

// Follow centers the paddle under pointer x, clamped to the arena.
// Pointer positions outside the arena are ignored.
func (p *Paddle) Follow(x, arenaWidth float64) {
	if x <= 0 || x >= arenaWidth {
		return
	}
	p.X = core.ClampF(x-p.Width/2, 0, arenaWidth-p.Width)
}

// Recenter puts the paddle in the middle of the arena.
func (p *Paddle) Recenter(arenaWidth float64) {
	p.X = (arenaWidth - p.Width) / 2
}

// StepOutcome reports what happened to the ball during a physics step.
type StepOutcome int

const (
	StepMoved  StepOutcome = iota // Ball moved, possibly off a wall
	StepCaught                    // Ball bounced off the paddle
	StepMissed                    // Ball passed the paddle line; it was not moved
)

// StepBall applies one tick of wall and paddle rules and moves the ball.
//
// All checks use the projected position, so a ball reflects one step before
// it would cross a boundary. That does not rule out tunneling when the speed
// exceeds the ball's diameter.
//
// A catch steers the ball: its horizontal speed becomes catchSpeed scaled by
// where it met the paddle (-1 at the left edge, 1 at the right edge),
// independent of difficulty. On a miss the ball is left where it was and the
// caller decides what happens next.
func StepBall(b *Ball, p *Paddle, a Arena, catchSpeed float64) StepOutcome {
	next := b.Next()
	outcome := StepMoved

	if next.X > a.Width-b.Radius || next.X < b.Radius {
		b.Vel.X = -b.Vel.X
	}

	switch {
	case next.Y < b.Radius:
		b.Vel.Y = -b.Vel.Y
	case next.Y > a.Height-b.Radius:
		if b.Pos.X < p.X || b.Pos.X > p.X+p.Width {
			return StepMissed
		}
		relativeX := (b.Pos.X - p.CenterX()) / (p.Width / 2)
		b.Vel.X = relativeX * catchSpeed
		b.Vel.Y = -b.Vel.Y
		outcome = StepCaught
	}

	b.Advance()
	return outcome
}
