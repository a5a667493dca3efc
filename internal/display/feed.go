package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Side    string // "player", "ai" or "--"
	Message string
}

// EventFeed is a ring buffer of match events rendered beside the table.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]FeedEntry, feedMaxEntries)}
}

// Add appends an entry, dropping the oldest once full.
func (f *EventFeed) Add(tick int, side, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Side: side, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func (f *EventFeed) Len() int { return f.count }

// Draw renders the panel at panelX, newest entry at the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, feedPanelWidth, float32(panelH), color.RGBA{R: 12, G: 12, B: 18, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)

	vector.FillRect(screen, px, 0, feedPanelWidth, 16, color.RGBA{R: 24, G: 24, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT FEED  [H] hide", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const recent = 3
	y := 22
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, px+2, float32(y-1), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 30, B: 48, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 5, sideColor(e.Side), false)
		drawText(screen, face, fmt.Sprintf("%5d %s", e.Tick, e.Message), float64(panelX+12), float64(y), 1, colGray)
		y += feedLineHeight
	}
}
