// Package registry maps difficulty presets to game factories.
// The bricks package registers one factory per preset in init(), so the
// CLI and picker can start a game from a preset without importing it.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Game is what the terminal shell drives. Implementations hold no
// Bubble Tea state; the shell owns timing, input mapping and output.
type Game interface {
	// ID returns the game identifier (e.g., "bricks-easy").
	ID() string

	// Title returns the display name (e.g., "Bricks (Easy)").
	Title() string

	// Reset starts a fresh game for the given screen size and tick rate.
	// Called once at start and again on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick using the actions and pointer column of the frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the last snapshot into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, lives, level and whether the game is over.
	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

// Entry describes a registered preset.
type Entry struct {
	Preset config.DifficultyPreset
	Title  string
}

type registration struct {
	title   string
	factory Factory
}

var (
	games = make(map[config.DifficultyPreset]registration)
	mu    sync.RWMutex
)

// Register adds the factory for a preset. Panics if the preset is taken.
func Register(preset config.DifficultyPreset, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[preset]; exists {
		panic(fmt.Sprintf("registry: difficulty %q already registered", preset))
	}
	games[preset] = registration{title: title, factory: f}
}

// List returns the registered presets, easiest first. Presets outside
// config.Presets() follow in name order.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(games))
	for p, reg := range games {
		result = append(result, Entry{Preset: p, Title: reg.title})
	}

	slices.SortFunc(result, func(a, b Entry) int {
		if ra, rb := rank(a.Preset), rank(b.Preset); ra != rb {
			return ra - rb
		}
		if a.Preset < b.Preset {
			return -1
		}
		if a.Preset > b.Preset {
			return 1
		}
		return 0
	})

	return result
}

// rank orders known presets by difficulty and puts unknown ones last.
func rank(p config.DifficultyPreset) int {
	if i := slices.Index(config.Presets(), p); i >= 0 {
		return i
	}
	return len(config.Presets())
}

// Create returns a new game for the preset.
func Create(preset config.DifficultyPreset) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	reg, ok := games[preset]
	if !ok {
		return nil, fmt.Errorf("registry: no game for difficulty %q", preset)
	}
	return reg.factory(), nil
}

// Has reports whether a preset is registered.
func Has(preset config.DifficultyPreset) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[preset]
	return ok
}
