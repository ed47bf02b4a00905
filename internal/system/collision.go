package system

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/geom"
)

// Contact is the outcome of the collision search for one moving entity.
// When Hit is false the mover has a clear path this tick and Other is unset.
type Contact struct {
	Mover     ecs.EntityRef
	Other     ecs.EntityRef
	Hit       bool
	Collision geom.Collision
}

// FindContacts runs the swept test for every moving entity against every
// other entity it declares interest in, and records the earliest hit.
// It only reads the arena; buf is reused for the result.
//
// Each mover is swept relative to the obstacle's own motion. Hits whose
// face normal points along the relative movement are ignored: the mover
// is already leaving that face.
func FindContacts(a *ecs.Arena[component.Entity], dt float64, buf []Contact) []Contact {
	buf = buf[:0]
	for moverRef, mover := range a.Refs() {
		if !mover.Moving() {
			continue
		}
		c := Contact{Mover: moverRef}
		for otherRef, other := range a.Refs() {
			if otherRef.Slot == moverRef.Slot || !mover.CollideWith.Intersects(other.Tags) {
				continue
			}
			rel := mover.Velocity.Sub(other.Velocity).Scale(dt)
			movement := geom.Seg(mover.Position, mover.Position.Add(rel))
			hit, ok := geom.SweptAABB(movement, mover.HalfSize, other.Position, other.HalfSize)
			if !ok || movement.Vec().Dot(hit.Normal) > 0 {
				continue
			}
			if !c.Hit || hit.T < c.Collision.T {
				c.Other, c.Hit, c.Collision = otherRef, true, hit
			}
		}
		buf = append(buf, c)
	}
	return buf
}
