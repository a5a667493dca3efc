package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/ping-pong/internal/game"
)

// Rows reserved around the table.
const (
	hudRows    = 2
	footerRows = 1
)

var (
	styleWhite  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 150, 255))
	styleAI     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 100, 100))
	styleGray   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200))
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer draws render models onto a tcell screen, scaling the table to
// whatever grid the terminal offers.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// grid maps table coordinates onto the cell area below the HUD.
type grid struct {
	cols, rows int
	sx, sy     float64
}

func newGrid(m game.RenderModel, cols, rows int) grid {
	rows -= hudRows + footerRows
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return grid{cols: cols, rows: rows, sx: float64(cols) / m.Width, sy: float64(rows) / m.Height}
}

func (g grid) col(x float64) int {
	return clampInt(int(x*g.sx), 0, g.cols-1)
}

func (g grid) row(y float64) int {
	return hudRows + clampInt(int(y*g.sy), 0, g.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw renders one frame; footer is the latest event line.
func (r *Renderer) Draw(m game.RenderModel, footer string) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	g := newGrid(m, cols, rows)

	mid := g.col(m.Width / 2)
	for y := 0; y < g.rows; y += 2 {
		r.screen.SetContent(mid, hudRows+y, '┆', nil, styleDim)
	}

	r.fillRect(g, m.Player, '█', stylePlayer)
	r.fillRect(g, m.AI, '█', styleAI)
	r.screen.SetContent(g.col(m.Ball.X+m.Ball.W/2), g.row(m.Ball.Y+m.Ball.H/2), '●', nil, styleWhite)

	r.centered(cols/4, 0, "PLAYER", stylePlayer)
	r.centered(cols/4, 1, fmt.Sprint(m.PlayerScore), styleWhite)
	r.centered(cols*3/4, 0, "AI", styleAI)
	r.centered(cols*3/4, 1, fmt.Sprint(m.AIScore), styleWhite)
	r.centered(cols/2, 0, fmt.Sprintf("first to %d", m.Threshold), styleDim)

	if footer == "" {
		footer = "w/s or arrows move   ctrl-c quit"
	}
	r.text(0, rows-1, footer, styleDim)

	if o, ok := m.GameOverOverlay(); ok {
		banner := styleAI
		if o.BannerSide == game.SidePlayer {
			banner = stylePlayer
		}
		cy := hudRows + g.rows/2
		r.centered(cols/2, cy-3, o.Banner, banner.Bold(true))
		r.centered(cols/2, cy-1, o.Replay, styleGray)
		r.centered(cols/2, cy, o.Exit, styleGray)
		r.centered(cols/2, cy+2, o.FinalScore, styleGray)
	}

	r.screen.Show()
}

// fillRect covers every cell the rect touches, at least one cell.
func (r *Renderer) fillRect(g grid, rc game.Rect, ch rune, style tcell.Style) {
	x0, x1 := g.col(rc.X), g.col(rc.Right()-1)
	y0, y1 := g.row(rc.Y), g.row(rc.Bottom()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) centered(cx, y int, s string, style tcell.Style) {
	r.text(cx-len([]rune(s))/2, y, s, style)
}
