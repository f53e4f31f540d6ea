package bricks

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Brick is a single destructible target.
type Brick struct {
	Column        int
	Row           int
	HitsRemaining int
	Alive         bool

	// Rect is fixed when the grid is built.
	Rect core.RectF
}

// Grid is the brick layout of one level, indexed [column][row].
type Grid struct {
	Columns int
	Rows    int
	OffsetX float64 // Left margin that centers the row in the arena
	Bricks  [][]Brick
}

// BuildGrid lays out a fresh grid for the profile, centered in the arena width.
// Every brick starts alive with the profile's hit count for its row.
func BuildGrid(p Profile, arenaWidth float64, geo config.BrickConfig) *Grid {
	g := &Grid{
		Columns: geo.Columns,
		Rows:    p.RowCount,
		OffsetX: (arenaWidth - geo.RowWidth()) / 2,
		Bricks:  make([][]Brick, geo.Columns),
	}

	for c := range geo.Columns {
		g.Bricks[c] = make([]Brick, p.RowCount)
		for r := range p.RowCount {
			g.Bricks[c][r] = Brick{
				Column:        c,
				Row:           r,
				HitsRemaining: p.HitsForRow(r),
				Alive:         true,
				Rect: core.RectF{
					X: float64(c)*(geo.Width+geo.Padding) + g.OffsetX,
					Y: float64(r)*(geo.Height+geo.Padding) + geo.OffsetTop,
					W: geo.Width,
					H: geo.Height,
				},
			}
		}
	}

	return g
}

// Total returns the number of bricks in the grid.
func (g *Grid) Total() int {
	return g.Columns * g.Rows
}

// AliveCount returns the number of bricks still standing.
func (g *Grid) AliveCount() int {
	count := 0
	for c := range g.Bricks {
		for r := range g.Bricks[c] {
			if g.Bricks[c][r].Alive {
				count++
			}
		}
	}
	return count
}

// AllCleared reports whether every brick has been destroyed.
func (g *Grid) AllCleared() bool {
	for c := range g.Bricks {
		for r := range g.Bricks[c] {
			if g.Bricks[c][r].Alive {
				return false
			}
		}
	}
	return true
}

// Live returns copies of the bricks still standing, column by column.
func (g *Grid) Live() []Brick {
	live := make([]Brick, 0, g.Total())
	for c := range g.Bricks {
		for _, b := range g.Bricks[c] {
			if b.Alive {
				live = append(live, b)
			}
		}
	}
	return live
}
