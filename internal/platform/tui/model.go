package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // Esc pressed: return to the picker
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "width", m.config.ScreenW, "height", m.config.ScreenH, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.SetPointer(msg.X)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		m.logger.Info("back to menu", "score", m.gameState.Score)
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	logEvents(m.logger, result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Keep ticking after game over; the game idles until restarted.
	return m, tickCmd(m.config.TickRate)
}

// logEvents writes game events to the logger. Brick events are frequent and
// logged at debug level.
func logEvents(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventBrickHit:
			logger.Debug(e.Type.String(), "hits", e.Value)
		case core.EventBrickDestroyed:
			logger.Debug(e.Type.String(), "score", e.Value)
		case core.EventLevelStarted, core.EventLevelCleared:
			logger.Info(e.Type.String(), "level", e.Value)
		case core.EventLifeLost:
			logger.Info(e.Type.String(), "lives", e.Value)
		case core.EventGameOver:
			logger.Info(e.Type.String(), "score", e.Value)
		default:
			logger.Warn("unknown event", "type", e.Type, "value", e.Value)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".bricks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameResult reports how a game session ended.
type GameResult struct {
	Back   bool // Player asked to return to the picker
	State  core.GameState
	Config core.RuntimeConfig
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) (GameResult, error) {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the paddle
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{Config: cfg}, nil
	}
	return GameResult{Back: m.back, State: m.gameState, Config: m.config}, nil
}
