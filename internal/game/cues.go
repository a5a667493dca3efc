package game

// Cue is a fire-and-forget notification for the audio collaborator.
type Cue int

const (
	CueWallBounce Cue = iota
	CuePaddleHit
	CueScore
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueWallBounce:
		return "wall_bounce"
	case CuePaddleHit:
		return "paddle_hit"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

// CueNotifier receives cues as they happen. Implementations must absorb their
// own failures; Notify has no way to report one back to the simulation.
type CueNotifier interface {
	Notify(Cue)
}

// NopNotifier discards every cue.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(Cue) {}

// CueFunc adapts a function to CueNotifier.
type CueFunc func(Cue)

// Notify calls f(c).
func (f CueFunc) Notify(c Cue) { f(c) }

// fanOut delivers each cue to several notifiers in order.
type fanOut []CueNotifier

func (fo fanOut) Notify(c Cue) {
	for _, n := range fo {
		n.Notify(c)
	}
}

// MultiNotifier combines notifiers; nil entries are skipped.
func MultiNotifier(ns ...CueNotifier) CueNotifier {
	var out fanOut
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
