package system

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/input"
)

// UpdateController turns the pointer into paddle velocity. While the drag
// button is held every Player entity heads for the pointer's x (kept inside
// the arena); otherwise it holds position. The velocity covers the whole
// distance in one dt, so a zero or negative dt yields zero velocity.
func UpdateController(a *ecs.Arena[component.Entity], in *input.Snapshot, dt float64, arenaHalf geom.Vec2) {
	dragging := in != nil && in.Button(input.ButtonDrag).IsDown()

	for e := range a.All() {
		if !e.Is(component.TagPlayer) {
			continue
		}
		target := e.Position.X
		if dragging {
			limit := arenaHalf.X - e.HalfSize.X
			if limit < 0 {
				limit = 0
			}
			target = geom.Clamp(-limit, in.Pointer.X, limit)
		}

		e.Velocity = geom.Vec2{}
		if dt <= 0 {
			continue
		}
		v := geom.V((target-e.Position.X)/dt, 0)
		if v.IsFinite() {
			e.Velocity = v
		}
	}
}

// UpdateMasks lets balls hit the paddle only while falling, so a ball that
// just bounced cannot be caught again on its way up.
func UpdateMasks(a *ecs.Arena[component.Entity]) {
	for e := range a.All() {
		if !e.Is(component.TagBall) {
			continue
		}
		if e.Velocity.Y < 0 {
			e.CollideWith = e.CollideWith.With(component.TagPlayer)
		} else {
			e.CollideWith = e.CollideWith.Without(component.TagPlayer)
		}
	}
}
