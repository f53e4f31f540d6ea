package registry

import (
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", "Stub B", stubFactory("stub-b"))
	Register("stub-a", "Stub A", stubFactory("stub-a"))

	if !Has("stub-a") || !Has("stub-b") {
		t.Fatal("registered presets not found")
	}
	if Has("stub-missing") {
		t.Error("Has reported an unregistered preset")
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	g2, _ := Create("stub-a")
	g1.Step(core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("Create returned a shared instance")
	}
	if g1.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g1.ID())
	}
}

func TestListOrdersByDifficulty(t *testing.T) {
	Register("stub-z", "Stub Z", stubFactory("stub-z"))
	Register(config.DifficultyHard, "Hard", stubFactory("hard"))
	Register(config.DifficultyEasy, "Easy", stubFactory("easy"))
	Register("stub-y", "Stub Y", stubFactory("stub-y"))
	Register(config.DifficultyMedium, "Medium", stubFactory("medium"))

	var got []config.DifficultyPreset
	for _, e := range List() {
		switch e.Preset {
		case config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard, "stub-y", "stub-z":
			got = append(got, e.Preset)
		}
		if e.Preset == config.DifficultyMedium && e.Title != "Medium" {
			t.Errorf("title for medium = %q", e.Title)
		}
	}

	want := []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard, "stub-y", "stub-z"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestRegisterDoesNotBuildGames(t *testing.T) {
	built := 0
	Register("stub-lazy", "Lazy", func() Game {
		built++
		return &stubGame{id: "stub-lazy"}
	})
	List()
	if built != 0 {
		t.Errorf("factory called %d times before Create", built)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-preset"); err == nil {
		t.Error("Create of unknown preset succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Dup", stubFactory("stub-dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-dup", "Dup", stubFactory("stub-dup"))
}
