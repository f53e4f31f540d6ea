package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

func TestMenuListsEveryDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 8)

	if len(m.items) != len(config.Presets()) {
		t.Fatalf("items = %d, expected %d", len(m.items), len(config.Presets()))
	}

	view := m.View()
	for _, p := range config.Presets() {
		if !strings.Contains(view, string(p)) {
			t.Errorf("view missing %q", p)
		}
	}
	if !strings.Contains(view, "40") {
		t.Error("view missing easy brick count 40")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 8)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	mm := next.(MenuModel)
	if mm.Selected() == nil {
		t.Fatal("nothing selected after enter")
	}
	if mm.Selected().Difficulty != config.DifficultyMedium {
		t.Errorf("selected %q, expected medium", mm.Selected().Difficulty)
	}
	if mm.Selected().GameID != "bricks-medium" {
		t.Errorf("GameID = %q, expected bricks-medium", mm.Selected().GameID)
	}
	if cmd == nil {
		t.Error("select did not quit the picker")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 8)

	next, _ := m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q did not quit")
	}
}

func TestHitRange(t *testing.T) {
	tests := map[string]string{
		"easy":   "1",
		"medium": "1-2",
		"hard":   "1-3",
	}
	for tag, want := range tests {
		p, err := bricks.ResolveProfile(tag)
		if err != nil {
			t.Fatal(err)
		}
		if got := hitRange(p); got != want {
			t.Errorf("hitRange(%s) = %q, expected %q", tag, got, want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
