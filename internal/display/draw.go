package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/ping-pong/internal/game"
)

var (
	colWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colPlayer = color.RGBA{R: 100, G: 150, B: 255, A: 255}
	colAI     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	colGray   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colDim    = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

func sideColor(side string) color.RGBA {
	switch side {
	case game.SidePlayer.String():
		return colPlayer
	case game.SideAI.String():
		return colAI
	default:
		return colGray
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	m := g.model

	g.drawTable(screen, m)
	g.drawHUD(screen, m)
	if o, ok := m.GameOverOverlay(); ok {
		g.drawOverlay(screen, m, o)
	}
	if g.showFeed {
		g.feed.Draw(screen, g.face, int(m.Width), int(m.Height))
	}
}

func (g *Game) drawTable(screen *ebiten.Image, m game.RenderModel) {
	// Dashed centre line.
	cx := float32(m.Width/2) - 2
	for y := 0; y < int(m.Height); y += 20 {
		vector.FillRect(screen, cx, float32(y), 4, 10, colWhite, false)
	}

	fillRect(screen, m.Player, colPlayer)
	fillRect(screen, m.AI, colAI)

	r := float32(m.Ball.W / 2)
	vector.FillCircle(screen, float32(m.Ball.X)+r, float32(m.Ball.Y)+r, r, colWhite, true)
}

func fillRect(screen *ebiten.Image, r game.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, m game.RenderModel) {
	left, right := m.Width/4, m.Width*3/4
	drawCentered(screen, g.face, "PLAYER", left, 20, 2, colPlayer)
	drawCentered(screen, g.face, fmt.Sprint(m.PlayerScore), left, 50, 4, colWhite)
	drawCentered(screen, g.face, "AI", right, 20, 2, colAI)
	drawCentered(screen, g.face, fmt.Sprint(m.AIScore), right, 50, 4, colWhite)

	status := fmt.Sprintf("first to %d   rally %d", m.Threshold, m.RallyHits)
	drawCentered(screen, g.face, status, m.Width/2, m.Height-40, 1, colDim)
	drawCentered(screen, g.face, "W/S or arrows move   C copy report   H event feed", m.Width/2, m.Height-22, 1, colDim)
}

func (g *Game) drawOverlay(screen *ebiten.Image, m game.RenderModel, o game.Overlay) {
	vector.FillRect(screen, 0, 0, float32(m.Width), float32(m.Height), color.RGBA{A: 180}, false)

	cx, cy := m.Width/2, m.Height/2
	bannerCol := colAI
	if o.BannerSide == game.SidePlayer {
		bannerCol = colPlayer
	}
	drawCentered(screen, g.face, o.Banner, cx, cy-120, 5, bannerCol)
	drawCentered(screen, g.face, o.Replay, cx, cy-20, 2, colGray)
	drawCentered(screen, g.face, o.Exit, cx, cy+20, 1.5, colGray)
	drawCentered(screen, g.face, o.FinalScore, cx, cy+70, 2, colGray)
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawCentered draws s with its horizontal centre at cx.
func drawCentered(dst *ebiten.Image, face text.Face, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, face, s, cx-w*scale/2, y, scale, clr)
}
