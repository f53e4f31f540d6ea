package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives left
	Level    int  // Current level, starting at 1
	GameOver bool // Whether the game has ended
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventLevelStarted EventType = iota
	EventBrickHit
	EventBrickDestroyed
	EventLifeLost
	EventLevelCleared
	EventGameOver
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventLevelStarted:
		return "level_started"
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence within a tick.
// Value carries the event's number: the level for level events,
// lives left for life events, the score for brick events.
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
