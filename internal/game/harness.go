package game

// RunTicks advances up to n frames with the player paddle on autopilot, so
// both ends play the tracking policy. It stops early once the match is over.
func (s *Simulation) RunTicks(n int) {
	for i := 0; i < n && !s.gameOver; i++ {
		s.Tick(s.Autopilot(), nil)
	}
}

// RunUntil advances the autopiloted match up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (s *Simulation) RunUntil(predicate func(*Simulation) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if s.gameOver {
			break
		}
		s.Tick(s.Autopilot(), nil)
		if predicate(s) {
			return s.tick
		}
	}
	return -1
}
