package render

import (
	"emoji-breakout/assets"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is the status shown under the arena.
type HUD struct {
	LevelIndex int // zero-based
	LevelCount int
	LevelName  string
	Balls      int
	Blocks     int
	Muted      bool
	Messages   []string
}

// DrawHUD renders the status line and the latest messages at the bottom of
// the screen, then shows the frame.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, assets.ColorFrame)

	sound := assets.GlyphSound
	if h.Muted {
		sound = assets.GlyphMuted
	}
	status := fmt.Sprintf("%s %d/%d %s   %s x%d   %s x%d   %s",
		assets.GlyphLevel, h.LevelIndex+1, h.LevelCount, h.LevelName,
		assets.GlyphBall, h.Balls, assets.GlyphBlock, h.Blocks, sound)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(assets.ColorHUD))

	start := max(len(h.Messages)-(hudRows-2), 0)
	for i, msg := range h.Messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(assets.ColorMessage))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := range w {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
