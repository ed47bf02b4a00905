package render

import (
	"emoji-breakout/internal/geom"
	"math"
)

// Camera maps world coordinates (origin at the arena center, y up) to
// terminal cells (origin top-left, y down). A cell is about twice as tall as
// it is wide, so one row spans twice the world distance of one column.
type Camera struct {
	Scale      float64 // world units per column
	ViewWidth  int     // in terminal columns
	ViewHeight int     // in terminal rows
}

// NewCamera returns a camera that fits a box of half extent half into the
// view, centered.
func NewCamera(half geom.Vec2, viewW, viewH int) *Camera {
	viewW, viewH = max(viewW, 1), max(viewH, 1)
	scale := max(2*half.X/float64(viewW), half.Y/float64(viewH))
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	return &Camera{Scale: scale, ViewWidth: viewW, ViewHeight: viewH}
}

// WorldToScreen converts a world point to the cell containing it.
// visible is false when the cell falls outside the view.
func (c *Camera) WorldToScreen(p geom.Vec2) (sx, sy int, visible bool) {
	sx = int(math.Floor(float64(c.ViewWidth)/2 + p.X/c.Scale))
	sy = int(math.Floor(float64(c.ViewHeight)/2 - p.Y/(2*c.Scale)))
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a cell to the world point at its center.
func (c *Camera) ScreenToWorld(sx, sy int) geom.Vec2 {
	x := (float64(sx) + 0.5 - float64(c.ViewWidth)/2) * c.Scale
	y := (float64(c.ViewHeight)/2 - float64(sy) - 0.5) * 2 * c.Scale
	return geom.V(x, y)
}

// RectToScreen returns the inclusive cell range covered by a box. Every
// box covers at least one cell.
func (c *Camera) RectToScreen(center, half geom.Vec2) (x0, y0, x1, y1 int) {
	x0, y1, _ = c.WorldToScreen(center.Sub(half))
	x1, y0, _ = c.WorldToScreen(center.Add(half))
	// The far edges belong to the next cell over when they land exactly on
	// a boundary.
	if x1 > x0 && isCellEdge(float64(c.ViewWidth)/2+(center.X+half.X)/c.Scale) {
		x1--
	}
	if y1 > y0 && isCellEdge(float64(c.ViewHeight)/2-(center.Y-half.Y)/(2*c.Scale)) {
		y1--
	}
	return
}

func isCellEdge(v float64) bool { return v == math.Floor(v) }
