package render

import (
	"emoji-breakout/assets"
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/geom"
	"iter"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved for the HUD at the bottom.
const hudRows = 4

// Renderer draws the arena onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	extent geom.Vec2
}

// NewRenderer creates a Renderer whose camera fits a box of half extent
// extent (the arena plus its walls) above the HUD.
func NewRenderer(screen tcell.Screen, extent geom.Vec2) *Renderer {
	r := &Renderer{screen: screen, extent: extent}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(r.extent, w, h-hudRows)
}

// Camera returns the current camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// ScreenToWorld converts a cell to world coordinates.
func (r *Renderer) ScreenToWorld(x, y int) geom.Vec2 { return r.camera.ScreenToWorld(x, y) }

// DrawFrame clears the screen and draws every entity. Balls are drawn last
// so they stay visible when overlapping a block or the paddle.
func (r *Renderer) DrawFrame(entities iter.Seq[component.Entity]) {
	r.screen.Clear()
	var balls []component.Entity
	for e := range entities {
		if e.Is(component.TagBall) {
			balls = append(balls, e)
			continue
		}
		r.drawBox(e)
	}
	for _, b := range balls {
		r.drawBall(b)
	}
}

// drawBox fills the cells covered by e. Blocks with more than one life
// show the count in their middle.
func (r *Renderer) drawBox(e component.Entity) {
	style := tcell.StyleDefault.Background(colorOf(e)).Foreground(assets.ColorHUD)
	x0, y0, x1, y1 := r.camera.RectToScreen(e.Position, e.HalfSize)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.camera.ViewWidth-1), min(y1, r.camera.ViewHeight-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	if e.Is(component.TagBlock) && e.Life > 1 {
		if cx, cy, ok := r.camera.WorldToScreen(e.Position); ok {
			r.drawText(cx, cy, strconv.Itoa(e.Life), style)
		}
	}
}

func (r *Renderer) drawBall(e component.Entity) {
	sx, sy, ok := r.camera.WorldToScreen(e.Position)
	if !ok {
		return
	}
	// Emoji take two columns; center them on the ball.
	if runewidth.StringWidth(assets.GlyphBall) == 2 && sx > 0 {
		sx--
	}
	r.putGlyph(sx, sy, assets.GlyphBall, tcell.StyleDefault.Foreground(colorOf(e)))
}

// colorOf returns the entity's own color, or a color chosen by tag when it
// has none.
func colorOf(e component.Entity) tcell.Color {
	if e.Color != tcell.ColorDefault {
		return e.Color
	}
	switch {
	case e.Is(component.TagBall):
		return tcell.ColorAqua
	case e.Is(component.TagPlayer):
		return tcell.ColorLime
	case e.Is(component.TagBlock):
		return assets.BlockColor(e.Life)
	}
	return assets.ColorFrame
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
