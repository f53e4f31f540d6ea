package bricks

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Phase is the simulation's lifecycle state.
type Phase int

const (
	PhaseIdle         Phase = iota // Not started yet
	PhaseRunning                   // Ball in play
	PhaseLevelCleared              // All bricks gone, banner counting down
	PhaseGameOver                  // No lives left; waits for Start
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult is what one call to Tick produces.
type TickResult struct {
	Snapshot Snapshot
	Terminal bool         // Game over; further ticks change nothing
	Events   []core.Event // Everything that happened since the previous tick
}

// Simulation owns all state of one game: ball, paddle, grid, trail and the
// score/lives bookkeeping. It is not safe for concurrent use; the caller
// drives it from a single loop, one Tick per rendered frame.
type Simulation struct {
	cfg     config.BricksConfig
	arena   Arena
	profile Profile

	grid   *Grid
	ball   Ball
	paddle Paddle
	trail  *Trail

	phase      Phase
	score      int
	lives      int
	level      int
	ticks      uint64
	clearTicks int // Ticks spent in PhaseLevelCleared

	pending []core.Event
}

// NewSimulation creates an idle simulation. Call Start to begin a game.
func NewSimulation(cfg config.BricksConfig) *Simulation {
	return &Simulation{
		cfg:   cfg,
		arena: Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		paddle: Paddle{
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		trail: NewTrail(cfg.Trail.Length),
		phase: PhaseIdle,
	}
}

// Start begins a new game at the given difficulty, from any phase.
// Score, lives, level, grid, ball, paddle and trail are all reset.
// An unknown tag returns *config.ConfigError and leaves the simulation as it was.
func (s *Simulation) Start(tag string) error {
	profile, err := ResolveProfile(tag)
	if err != nil {
		return err
	}

	s.profile = profile
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.level = 1
	s.ticks = 0
	s.pending = nil
	s.resetLevel()
	s.phase = PhaseRunning
	s.emit(core.EventLevelStarted, s.level)
	return nil
}

// PointerMove feeds the latest pointer x (arena units) to the paddle.
func (s *Simulation) PointerMove(x float64) {
	s.paddle.Follow(x, s.arena.Width)
}

// NudgePaddle shifts the paddle by dx, clamped to the arena.
func (s *Simulation) NudgePaddle(dx float64) {
	s.paddle.X = core.ClampF(s.paddle.X+dx, 0, s.arena.Width-s.paddle.Width)
}

// Tick advances the simulation by one frame.
//
// While running: ball physics, brick collisions, trail update, then the
// level-cleared check. While the level-cleared banner shows, the ball keeps
// moving and the countdown advances; when it reaches the configured number of
// ticks the next level starts on that tick. Idle and game-over ticks change
// nothing.
func (s *Simulation) Tick() TickResult {
	switch s.phase {
	case PhaseIdle, PhaseGameOver:
		return s.result()
	case PhaseLevelCleared:
		s.clearTicks++
		if s.clearTicks >= s.cfg.Gameplay.ClearTicks {
			s.advanceLevel()
			return s.result()
		}
	}

	s.ticks++
	s.step()
	return s.result()
}

func (s *Simulation) step() {
	if StepBall(&s.ball, &s.paddle, s.arena, s.cfg.Ball.CatchSpeed) == StepMissed {
		if !s.loseLife() {
			return
		}
		s.ball.Advance()
	}

	res := ResolveCollisions(&s.ball, s.grid)
	if res.Hits > 0 {
		s.emit(core.EventBrickHit, res.Hits)
	}
	for range res.Destroyed {
		s.score++
		s.emit(core.EventBrickDestroyed, s.score)
	}

	s.trail.Push(s.ball.Pos)

	if res.Cleared && s.phase == PhaseRunning {
		s.phase = PhaseLevelCleared
		s.clearTicks = 0
		s.emit(core.EventLevelCleared, s.level)
	}
}

// loseLife takes a life and respawns the ball. It returns false when that
// was the last life.
func (s *Simulation) loseLife() bool {
	s.lives--
	s.emit(core.EventLifeLost, s.lives)

	if s.lives <= 0 {
		s.lives = 0
		s.phase = PhaseGameOver
		s.emit(core.EventGameOver, s.score)
		return false
	}

	s.spawnBall()
	s.paddle.Recenter(s.arena.Width)
	return true
}

// advanceLevel moves from the level-cleared banner to a fresh level.
// Running it outside PhaseLevelCleared is a no-op, so a repeated trigger
// cannot count a level twice.
func (s *Simulation) advanceLevel() {
	if s.phase != PhaseLevelCleared {
		return
	}
	s.level++
	s.resetLevel()
	s.phase = PhaseRunning
	s.emit(core.EventLevelStarted, s.level)
}

// resetLevel rebuilds the grid and puts ball, paddle and trail back to
// their starting state.
func (s *Simulation) resetLevel() {
	s.grid = BuildGrid(s.profile, s.arena.Width, s.cfg.Bricks)
	s.spawnBall()
	s.paddle.Recenter(s.arena.Width)
	s.trail.Clear()
	s.clearTicks = 0
}

// spawnBall places the ball at the spawn point with the profile's velocity.
func (s *Simulation) spawnBall() {
	s.ball = Ball{
		Pos:    core.Vec{X: s.arena.Width / 2, Y: s.arena.Height - s.cfg.Ball.SpawnOffset},
		Vel:    s.profile.BallSpeed,
		Radius: s.cfg.Ball.Radius,
	}
}

func (s *Simulation) emit(t core.EventType, v int) {
	s.pending = append(s.pending, core.Event{Type: t, Value: v})
}

func (s *Simulation) result() TickResult {
	events := s.pending
	s.pending = nil
	return TickResult{
		Snapshot: s.Snapshot(),
		Terminal: s.phase == PhaseGameOver,
		Events:   events,
	}
}

// Phase returns the current lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Running reports whether the game is in progress, including the
// level-cleared banner.
func (s *Simulation) Running() bool {
	return s.phase == PhaseRunning || s.phase == PhaseLevelCleared
}

// LevelCleared reports whether the level-cleared banner is showing.
func (s *Simulation) LevelCleared() bool {
	return s.phase == PhaseLevelCleared
}

// GameOver reports whether the last life has been lost.
func (s *Simulation) GameOver() bool {
	return s.phase == PhaseGameOver
}

// Score returns the number of bricks destroyed this game.
func (s *Simulation) Score() int {
	return s.score
}

// Lives returns the lives left.
func (s *Simulation) Lives() int {
	return s.lives
}

// Level returns the current level, starting at 1.
func (s *Simulation) Level() int {
	return s.level
}

// Profile returns the active difficulty profile.
func (s *Simulation) Profile() Profile {
	return s.profile
}

// Arena returns the playfield bounds.
func (s *Simulation) Arena() Arena {
	return s.arena
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.BricksConfig {
	return s.cfg
}
