package bricks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

func newTestGame(t *testing.T, preset config.DifficultyPreset) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New(preset)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if err := g.LoadError(); err != nil {
		t.Fatalf("Reset load error: %v", err)
	}
	return g
}

func TestGamesRegistered(t *testing.T) {
	for _, p := range config.Presets() {
		id := "bricks-" + string(p)
		if !registry.Has(p) {
			t.Errorf("difficulty %q not registered", p)
			continue
		}
		g, err := registry.Create(p)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameTitle(t *testing.T) {
	if got := New(config.DifficultyMedium).Title(); got != "Bricks (Medium)" {
		t.Errorf("Title() = %q, expected %q", got, "Bricks (Medium)")
	}
}

func TestGamePointerMapsToArena(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy)

	in := core.NewInputFrame()
	in.SetPointer(40)
	g.Step(in)

	// Column 40 of 80 covers arena x 400..410; its center is 405.
	if got := g.Snapshot().Paddle.X; got != 355 {
		t.Errorf("paddle X = %g, expected 355", got)
	}
}

func TestGameKeysNudgePaddle(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if got := g.Snapshot().Paddle.X; got != 325 {
		t.Errorf("paddle X after left = %g, expected 325", got)
	}

	in.Clear()
	in.Set(core.ActionRight)
	g.Step(in)
	g.Step(in)
	if got := g.Snapshot().Paddle.X; got != 375 {
		t.Errorf("paddle X after two rights = %g, expected 375", got)
	}
}

func TestGameStateAndEvents(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy)

	res := g.Step(core.NewInputFrame())
	if res.State.Lives != 3 || res.State.Level != 1 || res.State.GameOver {
		t.Errorf("State = %+v, expected lives 3 level 1", res.State)
	}
	if !hasEvent(res.Events, core.EventLevelStarted) {
		t.Errorf("events %v missing level_started", res.Events)
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy)
	s := g.Simulation()
	s.lives = 1
	s.ball.Pos = core.Vec{X: 100, Y: 586}
	s.ball.Vel = core.Vec{X: 3, Y: 3}
	s.paddle.X = 500

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatalf("State = %+v, expected game over", res.State)
	}

	// Restart is ignored while playing, so only a game-over restart resets.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in)
	if res.State.GameOver || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("State after restart = %+v", res.State)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, missing score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Lives: 3") {
		t.Errorf("HUD row = %q, missing lives", screen.Row(0))
	}

	// Brick [0][0] spans arena x 47.5.. and y 30.., which is cell (4, 2).
	if cell := screen.GetCell(4, 2); cell.Rune != BrickChar || cell.Color != core.ColorBlue {
		t.Errorf("cell (4,2) = %+v, expected blue brick", cell)
	}
	if cell := screen.GetCell(35, 23); cell.Rune != PaddleChar {
		t.Errorf("cell (35,23) = %+v, expected paddle", cell)
	}
	if cell := screen.GetCell(40, 22); cell.Rune != BallChar {
		t.Errorf("cell (40,22) = %+v, expected ball", cell)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := Snapshot{
		Phase: PhaseGameOver,
		Arena: Arena{Width: 800, Height: 600},
		Score: 7,
	}
	RenderSnapshot(screen, snap, "Bricks (Easy)")

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner not drawn")
	}
}

func TestBrickColor(t *testing.T) {
	tests := []struct {
		hits int
		want core.Color
	}{
		{1, core.ColorBlue},
		{2, core.ColorOrange},
		{3, core.ColorRed},
	}
	for _, tt := range tests {
		if got := BrickColor(tt.hits); got != tt.want {
			t.Errorf("BrickColor(%d) = %v, expected %v", tt.hits, got, tt.want)
		}
	}
}
