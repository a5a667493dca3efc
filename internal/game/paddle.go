package game

// trackDeadzone is how far the ball centre may drift from the paddle centre
// before the tracking policy reacts. It is the AI's only handicap.
const trackDeadzone = 10

// Paddle is a vertically moving bat confined to the screen height.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	screenHeight  float64
}

// NewPaddle creates a paddle at column x, vertically centred on the screen.
func NewPaddle(x, width, height, speed, screenHeight float64) *Paddle {
	p := &Paddle{
		X:            x,
		Width:        width,
		Height:       height,
		Speed:        speed,
		screenHeight: screenHeight,
	}
	p.Recenter()
	return p
}

// Move shifts the paddle one speed step in the given direction and clamps it
// to [0, screenHeight-height]. IntentNone leaves it where it is.
func (p *Paddle) Move(dir Intent) {
	switch dir {
	case IntentUp:
		p.Y -= p.Speed
	case IntentDown:
		p.Y += p.Speed
	default:
		return
	}
	p.Y = clamp(p.Y, 0, p.screenHeight-p.Height)
}

// TrackIntent returns the direction the tracking policy would move the paddle
// to follow a ball centred at ballCenterY.
func (p *Paddle) TrackIntent(ballCenterY float64) Intent {
	center := p.Y + p.Height/2
	switch {
	case ballCenterY < center-trackDeadzone:
		return IntentUp
	case ballCenterY > center+trackDeadzone:
		return IntentDown
	default:
		return IntentNone
	}
}

// AutoTrack moves the paddle one step towards the ball unless the ball is
// inside the deadzone.
func (p *Paddle) AutoTrack(ballCenterY float64) {
	p.Move(p.TrackIntent(ballCenterY))
}

// Recenter places the paddle in the vertical middle of the screen.
func (p *Paddle) Recenter() {
	p.Y = p.screenHeight/2 - p.Height/2
}

// Bounds returns the paddle's current rectangle.
func (p *Paddle) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
