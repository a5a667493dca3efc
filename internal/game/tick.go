package game

// Choice is a discrete replay/exit selection, delivered once per user action.
type Choice int

const (
	ChoiceBestOf3 Choice = iota
	ChoiceBestOf5
	ChoiceBestOf7
	ChoiceExit
)

// Threshold returns the winning score a replay choice asks for.
func (c Choice) Threshold() (int, bool) {
	switch c {
	case ChoiceBestOf3:
		return 3, true
	case ChoiceBestOf5:
		return 5, true
	case ChoiceBestOf7:
		return 7, true
	default:
		return 0, false
	}
}

func (c Choice) String() string {
	switch c {
	case ChoiceBestOf3:
		return "best_of_3"
	case ChoiceBestOf5:
		return "best_of_5"
	case ChoiceBestOf7:
		return "best_of_7"
	case ChoiceExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ChoiceForThreshold maps a winning score back to its replay choice.
func ChoiceForThreshold(n int) (Choice, bool) {
	switch n {
	case 3:
		return ChoiceBestOf3, true
	case 5:
		return ChoiceBestOf5, true
	case 7:
		return ChoiceBestOf7, true
	default:
		return 0, false
	}
}

// RenderModel is everything a front end needs to draw one frame.
type RenderModel struct {
	Tick int

	Width, Height float64
	Player        Rect
	AI            Rect
	Ball          Rect

	PlayerScore int
	AIScore     int
	Threshold   int
	RallyHits   int

	GameOver      bool
	Winner        Side
	ReplayOptions []int // only set while GameOver

	// ExitRequested is set when an exit choice was accepted this frame.
	ExitRequested bool
}

// Snapshot returns the current render model.
func (s *Simulation) Snapshot() RenderModel {
	m := RenderModel{
		Tick:        s.tick,
		Width:       s.width,
		Height:      s.height,
		Player:      s.player.Bounds(),
		AI:          s.ai.Bounds(),
		Ball:        s.ball.Bounds(),
		PlayerScore: s.playerScore,
		AIScore:     s.aiScore,
		Threshold:   s.threshold,
		RallyHits:   s.rallyHits,
		GameOver:    s.gameOver,
	}
	if s.gameOver {
		m.Winner = s.Winner()
		m.ReplayOptions = append([]int(nil), Thresholds...)
	}
	return m
}

// Tick runs one host-loop iteration: replay choices first (they only count
// once the match is over), then the player's intent and one Update if the
// match is in play. A replay choice that restarts the match lets the same
// frame play on.
func (s *Simulation) Tick(intent Intent, choices []Choice) RenderModel {
	exit := false
	for _, c := range choices {
		if !s.gameOver {
			continue
		}
		if c == ChoiceExit {
			exit = true
			s.SimLog.Add(s.tick, SideNone, "match", "exit", "requested", 0)
			continue
		}
		if n, ok := c.Threshold(); ok {
			_ = s.StartMatch(n)
		}
	}

	if !s.gameOver {
		s.MovePlayer(intent)
		s.Update()
	}

	m := s.Snapshot()
	m.ExitRequested = exit
	return m
}
