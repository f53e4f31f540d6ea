package bricks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// GameID returns the registry ID for a difficulty.
func GameID(preset config.DifficultyPreset) string {
	return "bricks-" + string(preset)
}

// Game adapts a Simulation to the platform: it maps terminal input to
// arena coordinates and draws snapshots into a screen buffer.
type Game struct {
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig
	sim     *Simulation
	last    Snapshot
	loadErr error
}

// New creates a game for the given difficulty.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID(g.preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	name := string(g.preset)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("Bricks (%s)", name)
}

// Reset loads the configuration and starts a new game.
// A broken config file falls back to the defaults; the error is kept for
// the caller to report via LoadError.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBricks(configPath)
	if err != nil {
		cfg = config.DefaultBricksConfig()
	}
	g.loadErr = err

	g.sim = NewSimulation(cfg)
	if err := g.sim.Start(string(g.preset)); err != nil {
		g.loadErr = err
	}
	g.last = g.sim.Snapshot()
}

// Resize adopts new screen dimensions without restarting. Arena state is
// independent of the terminal size; only the pointer mapping changes.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// LoadError returns the error hit while loading the config on the last Reset.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.HasPointer {
		g.sim.PointerMove(g.columnToArena(in.PointerCol))
	}

	step := g.sim.Config().Paddle.KeyStep
	if in.Has(core.ActionLeft) {
		g.sim.NudgePaddle(-step)
	}
	if in.Has(core.ActionRight) {
		g.sim.NudgePaddle(step)
	}

	res := g.sim.Tick()
	g.last = res.Snapshot

	return core.StepResult{State: g.State(), Events: res.Events}
}

// columnToArena maps a screen column to the arena x at the column's center.
func (g *Game) columnToArena(col int) float64 {
	if g.runtime.ScreenW <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * g.sim.Arena().Width / float64(g.runtime.ScreenW)
}

// Snapshot returns the snapshot of the last tick.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		Level:    g.sim.Level(),
		GameOver: g.sim.GameOver(),
	}
}

// Register one game per difficulty.
func init() {
	for _, p := range config.Presets() {
		registry.Register(p, New(p).Title(), func() registry.Game {
			return New(p)
		})
	}
}
