package bricks

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

func TestAutopilotRunDeterministic(t *testing.T) {
	a := DefaultAutopilot()

	r1, err := a.Run(NewSimulation(config.DefaultBricksConfig()), "easy", 3000)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := a.Run(NewSimulation(config.DefaultBricksConfig()), "easy", 3000)
	if err != nil {
		t.Fatal(err)
	}

	if r1.Snapshot.Hash() != r2.Snapshot.Hash() {
		t.Errorf("hashes differ: %d vs %d", r1.Snapshot.Hash(), r2.Snapshot.Hash())
	}
	if r1.Snapshot.Score == 0 {
		t.Error("autopilot scored nothing in 3000 ticks")
	}
}

func TestAutopilotUnknownDifficulty(t *testing.T) {
	_, err := DefaultAutopilot().Run(NewSimulation(config.DefaultBricksConfig()), "extreme", 10)
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, expected *config.ConfigError", err)
	}
}

func TestAutopilotZeroTicks(t *testing.T) {
	res, err := DefaultAutopilot().Run(NewSimulation(config.DefaultBricksConfig()), "hard", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Snapshot.Tick != 0 || res.Snapshot.Phase != PhaseRunning {
		t.Errorf("snapshot = tick %d phase %v, expected fresh running game", res.Snapshot.Tick, res.Snapshot.Phase)
	}
	if len(res.Snapshot.Bricks) != 56 {
		t.Errorf("bricks = %d, expected 56", len(res.Snapshot.Bricks))
	}
}

func TestAutopilotOnTick(t *testing.T) {
	a := DefaultAutopilot()

	calls := 0
	var first TickResult
	a.OnTick = func(res TickResult) {
		if calls == 0 {
			first = res
		}
		calls++
	}

	res, err := a.Run(NewSimulation(config.DefaultBricksConfig()), "easy", 100)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 100 {
		t.Errorf("OnTick called %d times, expected 100", calls)
	}
	if !hasEvent(first.Events, core.EventLevelStarted) {
		t.Errorf("first tick events %v missing level_started", first.Events)
	}
	if res.Snapshot.Tick != 100 {
		t.Errorf("final tick = %d, expected 100", res.Snapshot.Tick)
	}
}
