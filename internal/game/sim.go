package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Table geometry. Physics constants are fixed; only the screen size is
// adjustable, and only through WithScreenSize for tests.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TargetTPS    = 60

	paddleWidth      = 20
	paddleHeight     = 100
	paddleSpeed      = 6
	paddleEdgeOffset = 30
	ballSize         = 20
)

// DefaultThreshold is the winning score of the first match.
const DefaultThreshold = 5

// Thresholds lists the supported "first to N" winning scores.
var Thresholds = []int{3, 5, 7}

// ErrInvalidThreshold is returned by StartMatch for scores outside Thresholds.
var ErrInvalidThreshold = errors.New("unsupported winning score")

// ValidThreshold reports whether n is one of Thresholds.
func ValidThreshold(n int) bool {
	for _, t := range Thresholds {
		if t == n {
			return true
		}
	}
	return false
}

// Simulation owns one ball, two paddles and the match state. It is driven
// from a single goroutine, once per frame.
type Simulation struct {
	width  float64
	height float64

	player *Paddle // left, human-controlled
	ai     *Paddle // right, tracking policy
	ball   *Ball

	playerScore int
	aiScore     int
	threshold   int
	gameOver    bool

	tick      int
	rallyHits int // paddle hits since the last serve

	rng      RandSource
	notifier CueNotifier
	SimLog   *SimLog
	reporter *MatchReporter
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // size, randomness, collaborators: applied before entities exist
	simOptMatch                      // match settings: applied after entities exist
)

// Option configures a Simulation at construction.
type Option struct {
	kind simOptionKind
	fn   func(*Simulation)
}

// WithScreenSize sets the playfield dimensions.
func WithScreenSize(w, h float64) Option {
	return Option{simOptInfra, func(s *Simulation) {
		s.width = w
		s.height = h
	}}
}

// WithRandSource sets the source serve velocities are drawn from.
func WithRandSource(rng RandSource) Option {
	return Option{simOptInfra, func(s *Simulation) {
		s.rng = rng
	}}
}

// WithSeed seeds a math/rand source for deterministic runs.
func WithSeed(seed int64) Option {
	return Option{simOptInfra, func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}}
}

// WithNotifier sets the cue collaborator.
func WithNotifier(n CueNotifier) Option {
	return Option{simOptInfra, func(s *Simulation) {
		if n != nil {
			s.notifier = n
		}
	}}
}

// WithSimLog replaces the default non-verbose event log.
func WithSimLog(sl *SimLog) Option {
	return Option{simOptInfra, func(s *Simulation) {
		if sl != nil {
			s.SimLog = sl
		}
	}}
}

// WithReporter attaches a rally statistics collector.
func WithReporter(r *MatchReporter) Option {
	return Option{simOptInfra, func(s *Simulation) {
		s.reporter = r
	}}
}

// WithThreshold starts the first match with winning score n. Unsupported
// values are rejected like StartMatch does and the default stays in force.
func WithThreshold(n int) Option {
	return Option{simOptMatch, func(s *Simulation) {
		_ = s.StartMatch(n)
	}}
}

// NewSimulation builds a simulation in two ordered passes:
//  1. Infrastructure (screen size, randomness, notifier, log)
//  2. Match settings, after the ball and paddles exist
func NewSimulation(opts ...Option) *Simulation {
	s := &Simulation{
		width:     ScreenWidth,
		height:    ScreenHeight,
		threshold: DefaultThreshold,
		notifier:  NopNotifier{},
		SimLog:    NewSimLog(false),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	}

	s.player = NewPaddle(paddleEdgeOffset, paddleWidth, paddleHeight, paddleSpeed, s.height)
	s.ai = NewPaddle(s.width-paddleEdgeOffset, paddleWidth, paddleHeight, paddleSpeed, s.height)
	s.ball = NewBall(s.width/2-ballSize/2, s.height/2-ballSize/2, ballSize, ballSize, s.width, s.height, s.rng)

	for _, o := range opts {
		if o.kind == simOptMatch {
			o.fn(s)
		}
	}
	return s
}

// Update advances the simulation one frame. It does nothing once the match
// is over.
func (s *Simulation) Update() {
	if s.gameOver {
		return
	}
	s.tick++

	// 1. MOVE: ball travels and may bounce off the top or bottom.
	if s.ball.Advance() == ContactWall {
		s.SimLog.Add(s.tick, SideNone, "ball", "wall", fmt.Sprintf("y=%.0f vy=%+.2f", s.ball.Y, s.ball.VY), s.ball.VY)
		s.notifier.Notify(CueWallBounce)
	}

	// 2. COLLIDE: at most one paddle bounce.
	if s.ball.ResolveCollision(s.player, s.ai) == ContactPaddle {
		s.rallyHits++
		side := SidePlayer
		if s.ball.VX < 0 {
			side = SideAI
		}
		s.SimLog.Add(s.tick, side, "ball", "paddle_hit", fmt.Sprintf("vy=%+.2f rally=%d", s.ball.VY, s.rallyHits), s.ball.VY)
		s.notifier.Notify(CuePaddleHit)
	}

	// 3. AI: right paddle follows the ball.
	s.ai.AutoTrack(s.ball.CenterY())

	// 4. SCORE: a ball fully off either end scores once and is re-served.
	scorer := SideNone
	switch {
	case s.ball.X+s.ball.Width < 0:
		s.aiScore++
		scorer = SideAI
	case s.ball.X > s.width:
		s.playerScore++
		scorer = SidePlayer
	}
	if scorer != SideNone {
		s.SimLog.Add(s.tick, scorer, "score", "point",
			fmt.Sprintf("%d-%d rally=%d", s.playerScore, s.aiScore, s.rallyHits), float64(s.rallyHits))
		s.notifier.Notify(CueScore)
		s.ball.Reset()
		s.rallyHits = 0

		// 5. WIN: only a fresh point can end the match.
		if s.playerScore >= s.threshold || s.aiScore >= s.threshold {
			s.gameOver = true
			s.SimLog.Add(s.tick, s.Winner(), "match", "over",
				fmt.Sprintf("final %d-%d first_to=%d", s.playerScore, s.aiScore, s.threshold), float64(s.threshold))
		}
	}

	s.SimLog.AddVerbose(s.tick, SideNone, "ball", "position",
		fmt.Sprintf("(%.1f,%.1f) v=(%+.2f,%+.2f)", s.ball.X, s.ball.Y, s.ball.VX, s.ball.VY), 0)

	if s.reporter != nil && s.tick%s.reporter.Interval() == 0 {
		s.reporter.Collect(s)
	}
}

// StartMatch begins a new match to n points from either state: scores are
// zeroed, the ball is re-served and both paddles are recentred. Values outside
// Thresholds are rejected and leave the current match untouched.
func (s *Simulation) StartMatch(n int) error {
	if !ValidThreshold(n) {
		s.SimLog.Add(s.tick, SideNone, "match", "rejected_threshold", fmt.Sprintf("first_to=%d", n), float64(n))
		return fmt.Errorf("start match to %d: %w", n, ErrInvalidThreshold)
	}
	s.playerScore = 0
	s.aiScore = 0
	s.threshold = n
	s.gameOver = false
	s.rallyHits = 0
	s.ball.Reset()
	s.player.Recenter()
	s.ai.Recenter()
	s.SimLog.Add(s.tick, SideNone, "match", "start", fmt.Sprintf("first_to=%d", n), float64(n))
	return nil
}

// MovePlayer applies one frame of player input to the left paddle. It is
// ignored while the match is over.
func (s *Simulation) MovePlayer(dir Intent) {
	if s.gameOver {
		return
	}
	s.player.Move(dir)
}

// Autopilot returns the intent the tracking policy would choose for the
// player paddle; the headless runner uses it to play both ends.
func (s *Simulation) Autopilot() Intent {
	return s.player.TrackIntent(s.ball.CenterY())
}

// GameOver reports whether the match has been decided.
func (s *Simulation) GameOver() bool { return s.gameOver }

// Scores returns the player and AI scores.
func (s *Simulation) Scores() (player, ai int) { return s.playerScore, s.aiScore }

// Threshold returns the current winning score.
func (s *Simulation) Threshold() int { return s.threshold }

// CurrentTick returns how many frames have been simulated.
func (s *Simulation) CurrentTick() int { return s.tick }

// RallyHits returns the paddle hits since the last serve.
func (s *Simulation) RallyHits() int { return s.rallyHits }

// Winner returns the side that reached the threshold, or SideNone while the
// match is still being played.
func (s *Simulation) Winner() Side {
	switch {
	case s.playerScore >= s.threshold:
		return SidePlayer
	case s.aiScore >= s.threshold:
		return SideAI
	default:
		return SideNone
	}
}

// Size returns the playfield dimensions.
func (s *Simulation) Size() (w, h float64) { return s.width, s.height }
