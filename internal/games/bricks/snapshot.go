package bricks

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// BrickView is a live brick as presented to a renderer.
type BrickView struct {
	Rect          core.RectF
	HitsRemaining int
}

// Overlay describes the level-cleared banner.
type Overlay struct {
	Alpha float64 // Suggested banner opacity in [0, 0.5]
	Ticks int     // Ticks the banner has been showing
}

// Snapshot is a read-only view of the simulation after a tick.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Arena  Arena
	Paddle core.RectF

	Ball       core.Vec
	BallVel    core.Vec
	BallRadius float64
	Trail      []core.Vec // Oldest first

	Bricks []BrickView

	Score int
	Lives int
	Level int

	// LevelCleared is set only while the level-cleared banner shows.
	LevelCleared *Overlay
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.ticks,
		Phase:      s.phase,
		Arena:      s.arena,
		Paddle:     s.paddle.Rect(s.arena.Height),
		Ball:       s.ball.Pos,
		BallVel:    s.ball.Vel,
		BallRadius: s.ball.Radius,
		Trail:      s.trail.Points(),
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.level,
	}

	if s.grid != nil {
		live := s.grid.Live()
		snap.Bricks = make([]BrickView, len(live))
		for i, b := range live {
			snap.Bricks[i] = BrickView{Rect: b.Rect, HitsRemaining: b.HitsRemaining}
		}
	}

	if s.phase == PhaseLevelCleared {
		snap.LevelCleared = &Overlay{Alpha: bannerAlpha(s.clearTicks), Ticks: s.clearTicks}
	}

	return snap
}

// bannerAlpha pulses the banner on every tenth tick since the level was
// cleared and holds 0.5 otherwise.
func bannerAlpha(clearTicks int) float64 {
	if clearTicks%10 != 0 {
		return 0.5
	}
	return math.Abs(math.Sin(float64(clearTicks)/10) * 0.5)
}

// Hash returns a fingerprint of the gameplay state. Two runs fed the same
// inputs produce the same hash; the trail and banner alpha are not included.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) { putU(math.Float64bits(f)) }

	putU(snap.Tick)
	putU(uint64(snap.Phase))
	putF(snap.Paddle.X)
	putF(snap.Ball.X)
	putF(snap.Ball.Y)
	putF(snap.BallVel.X)
	putF(snap.BallVel.Y)
	putU(uint64(snap.Score))
	putU(uint64(snap.Lives))
	putU(uint64(snap.Level))
	for _, b := range snap.Bricks {
		putF(b.Rect.X)
		putF(b.Rect.Y)
		putU(uint64(b.HitsRemaining))
	}

	return h.Sum64()
}
