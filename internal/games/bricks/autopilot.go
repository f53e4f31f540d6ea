package bricks

// Autopilot steers the paddle toward the ball for headless runs.
//
// It aims slightly off-center, cycling through a few offsets, so catches
// send the ball at varied angles instead of straight up the same column.
type Autopilot struct {
	Offsets []float64 // Pointer offsets from the ball, in arena units
	Period  int       // Ticks each offset is held

	// OnTick, if set, receives every tick result during Run.
	OnTick func(TickResult)
}

// DefaultAutopilot returns an autopilot that sweeps -30..30 every 50 ticks.
func DefaultAutopilot() Autopilot {
	return Autopilot{
		Offsets: []float64{-30, -15, 15, 30},
		Period:  50,
	}
}

// Steer feeds the simulation one pointer move for the given tick.
func (a Autopilot) Steer(s *Simulation, tick int) {
	offset := 0.0
	if len(a.Offsets) > 0 && a.Period > 0 {
		offset = a.Offsets[(tick/a.Period)%len(a.Offsets)]
	}
	s.PointerMove(s.ball.Pos.X + offset)
}

// Run starts a game at the given difficulty and plays up to ticks frames,
// stopping early on game over. It returns the final tick result.
func (a Autopilot) Run(s *Simulation, tag string, ticks int) (TickResult, error) {
	if err := s.Start(tag); err != nil {
		return TickResult{}, err
	}

	res := TickResult{Snapshot: s.Snapshot()}
	for i := range ticks {
		a.Steer(s, i)
		res = s.Tick()
		if a.OnTick != nil {
			a.OnTick(res)
		}
		if res.Terminal {
			break
		}
	}
	return res, nil
}
