package bricks

// CollisionResult summarizes one sweep of the ball against the grid.
type CollisionResult struct {
	Hits      int  // Bricks struck this tick
	Destroyed int  // Bricks whose last hit landed this tick
	Cleared   bool // No brick is left standing
}

// ResolveCollisions tests the ball's center against every live brick.
//
// A hit always reverses the vertical velocity, whichever face was struck.
// The sweep does not stop at the first hit: if the center lies in two bricks
// at once, both take a hit and the vertical velocity flips twice.
func ResolveCollisions(b *Ball, g *Grid) CollisionResult {
	var res CollisionResult

	for c := range g.Bricks {
		for r := range g.Bricks[c] {
			brick := &g.Bricks[c][r]
			if !brick.Alive || !brick.Rect.ContainsStrict(b.Pos) {
				continue
			}

			b.Vel.Y = -b.Vel.Y
			brick.HitsRemaining--
			res.Hits++

			if brick.HitsRemaining <= 0 {
				brick.HitsRemaining = 0
				brick.Alive = false
				res.Destroyed++
			}
		}
	}

	res.Cleared = g.AllCleared()
	return res
}
