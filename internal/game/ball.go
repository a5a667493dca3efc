package game

import "math"

// Contact is what a ball movement or collision pass ran into.
type Contact int

const (
	ContactNone Contact = iota
	ContactWall
	ContactPaddle
)

func (c Contact) String() string {
	switch c {
	case ContactWall:
		return "wall"
	case ContactPaddle:
		return "paddle"
	default:
		return "none"
	}
}

// RandSource is the randomness the ball draws serve velocities from.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type RandSource interface {
	Intn(n int) int
}

// Serve velocity tables. Every entry is nonzero so a served ball can never
// travel in a straight horizontal line or stand still.
var (
	serveVX        = [...]float64{-6, 6}
	serveVY        = [...]float64{-4, -3, -2, 2, 3, 4}
	openingServeVY = [...]float64{-4, 4}
)

// angleFactor scales the vertical kick a paddle imparts by where it was hit.
const angleFactor = 2

// Ball is the moving square. It remembers its spawn point for serves.
type Ball struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64

	spawnX, spawnY float64
	screenWidth    float64
	screenHeight   float64
	rng            RandSource
}

// NewBall creates a ball at (x, y), which also becomes its serve point, and
// gives it an opening velocity of ±6 horizontally and ±4 vertically.
func NewBall(x, y, width, height, screenWidth, screenHeight float64, rng RandSource) *Ball {
	b := &Ball{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		spawnX:       x,
		spawnY:       y,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		rng:          rng,
	}
	b.VX = serveVX[rng.Intn(len(serveVX))]
	b.VY = openingServeVY[rng.Intn(len(openingServeVY))]
	return b
}

// SubSteps is the number of micro-moves Advance splits the current velocity
// into: the larger whole-unit speed component, at least 1.
func (b *Ball) SubSteps() int {
	return max(int(math.Abs(b.VX)), int(math.Abs(b.VY)), 1)
}

// StepDelta is the displacement applied by each micro-move.
func (b *Ball) StepDelta() (dx, dy float64) {
	steps := float64(b.SubSteps())
	return b.VX / steps, b.VY / steps
}

// Advance moves the ball one frame in sub-steps no longer than about one
// unit along the dominant axis, then bounces it off the top or bottom wall.
// The horizontal position is left unclamped; scoring reads it raw.
func (b *Ball) Advance() Contact {
	steps := b.SubSteps()
	dx, dy := b.StepDelta()
	for i := 0; i < steps; i++ {
		b.X += dx
		b.Y += dy
	}

	switch {
	case b.Y <= 0:
		b.Y = 0
		b.VY = math.Abs(b.VY)
		return ContactWall
	case b.Y+b.Height >= b.screenHeight:
		b.Y = b.screenHeight - b.Height
		b.VY = -math.Abs(b.VY)
		return ContactWall
	}
	return ContactNone
}

// ResolveCollision bounces the ball off the left paddle while it travels
// left, or off the right paddle while it travels right. A ball already
// heading away from a paddle is ignored so one hit cannot be resolved twice.
// The hit point adds vertical speed: an edge hit adds up to ±2, a centre hit
// adds nothing. The result is not capped.
func (b *Ball) ResolveCollision(left, right *Paddle) Contact {
	bounds := b.Bounds()
	switch {
	case b.VX < 0 && bounds.Overlaps(left.Bounds()):
		b.X = left.X + left.Width
		b.VX = math.Abs(b.VX)
		b.deflect(left)
		return ContactPaddle
	case b.VX > 0 && bounds.Overlaps(right.Bounds()):
		b.X = right.X - b.Width
		b.VX = -math.Abs(b.VX)
		b.deflect(right)
		return ContactPaddle
	}
	return ContactNone
}

func (b *Ball) deflect(p *Paddle) {
	halfHeight := p.Height / 2
	offset := (p.Y + halfHeight) - (b.Y + b.Height/2)
	b.VY += angleFactor * offset / halfHeight
}

// Reset returns the ball to its spawn point and serves it with a fresh
// random velocity.
func (b *Ball) Reset() {
	b.X = b.spawnX
	b.Y = b.spawnY
	b.VX = serveVX[b.rng.Intn(len(serveVX))]
	b.VY = serveVY[b.rng.Intn(len(serveVY))]
}

// Bounds returns the ball's current rectangle.
func (b *Ball) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// CenterY returns the ball's vertical centre.
func (b *Ball) CenterY() float64 {
	return b.Y + b.Height/2
}
