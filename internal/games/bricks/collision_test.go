package bricks

import (
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

func brickCenter(b Brick) core.Vec {
	return core.Vec{X: b.Rect.X + b.Rect.W/2, Y: b.Rect.Y + b.Rect.H/2}
}

func TestResolveCollisionsDestroysSingleHitBrick(t *testing.T) {
	g := buildGrid(t, "easy")
	b := &Ball{Pos: brickCenter(g.Bricks[0][0]), Vel: core.Vec{X: 3, Y: -3}, Radius: 12}

	res := ResolveCollisions(b, g)
	if res.Hits != 1 || res.Destroyed != 1 {
		t.Errorf("Hits/Destroyed = %d/%d, expected 1/1", res.Hits, res.Destroyed)
	}
	if b.Vel.Y != 3 {
		t.Errorf("Vel.Y = %g, expected 3", b.Vel.Y)
	}
	if b.Vel.X != 3 {
		t.Errorf("Vel.X = %g, expected unchanged 3", b.Vel.X)
	}
	if g.Bricks[0][0].Alive {
		t.Error("brick still alive after its only hit")
	}
	if res.Cleared {
		t.Error("Cleared = true with bricks left")
	}
}

func TestResolveCollisionsMultiHitBrick(t *testing.T) {
	g := buildGrid(t, "hard")
	target := &g.Bricks[3][0]
	if target.HitsRemaining != 3 {
		t.Fatalf("hard row 0 hits = %d, expected 3", target.HitsRemaining)
	}

	destroyed := 0
	for i := range 3 {
		b := &Ball{Pos: brickCenter(*target), Vel: core.Vec{X: 8, Y: -8}, Radius: 12}
		res := ResolveCollisions(b, g)
		if res.Hits != 1 {
			t.Fatalf("hit %d: Hits = %d, expected 1", i+1, res.Hits)
		}
		destroyed += res.Destroyed

		if i < 2 {
			if !target.Alive || res.Destroyed != 0 {
				t.Errorf("hit %d: brick destroyed early", i+1)
			}
		}
	}

	if destroyed != 1 {
		t.Errorf("destroyed = %d, expected 1", destroyed)
	}
	if target.Alive || target.HitsRemaining != 0 {
		t.Errorf("brick alive=%v hits=%d after 3 hits", target.Alive, target.HitsRemaining)
	}

	b := &Ball{Pos: brickCenter(*target), Vel: core.Vec{X: 8, Y: -8}, Radius: 12}
	if res := ResolveCollisions(b, g); res.Hits != 0 {
		t.Errorf("dead brick hit again: Hits = %d", res.Hits)
	}
}

func TestResolveCollisionsEdgeIsOutside(t *testing.T) {
	g := buildGrid(t, "easy")
	r := g.Bricks[0][0].Rect
	b := &Ball{Pos: core.Vec{X: r.X, Y: r.Y + r.H/2}, Vel: core.Vec{X: 3, Y: -3}, Radius: 12}

	res := ResolveCollisions(b, g)
	if res.Hits != 0 {
		t.Errorf("ball on brick edge registered %d hits", res.Hits)
	}
	if b.Vel.Y != -3 {
		t.Errorf("Vel.Y = %g, expected unchanged -3", b.Vel.Y)
	}
}

func TestResolveCollisionsClearsGrid(t *testing.T) {
	g := buildGrid(t, "easy")

	total := 0
	for c := range g.Columns {
		for r := range g.Rows {
			b := &Ball{Pos: brickCenter(g.Bricks[c][r]), Vel: core.Vec{X: 3, Y: -3}, Radius: 12}
			res := ResolveCollisions(b, g)
			total += res.Destroyed

			last := c == g.Columns-1 && r == g.Rows-1
			if res.Cleared != last {
				t.Fatalf("brick [%d][%d]: Cleared = %v, expected %v", c, r, res.Cleared, last)
			}
		}
	}

	if total != 40 {
		t.Errorf("destroyed %d bricks, expected 40", total)
	}
}

func TestResolveCollisionsHitsEveryContainingBrick(t *testing.T) {
	g := buildGrid(t, "easy")
	g.Bricks[1][0].Rect = g.Bricks[0][0].Rect
	b := &Ball{Pos: brickCenter(g.Bricks[0][0]), Vel: core.Vec{X: 3, Y: -3}, Radius: 12}

	res := ResolveCollisions(b, g)
	if res.Hits != 2 || res.Destroyed != 2 {
		t.Errorf("Hits/Destroyed = %d/%d, expected 2/2", res.Hits, res.Destroyed)
	}
	// Two flips cancel out.
	if b.Vel.Y != -3 {
		t.Errorf("Vel.Y = %g, expected -3 after two flips", b.Vel.Y)
	}
	if g.Bricks[0][0].Alive || g.Bricks[1][0].Alive {
		t.Error("an overlapping brick survived the tick")
	}
	if g.AliveCount() != 38 {
		t.Errorf("alive = %d, expected 38", g.AliveCount())
	}
}
