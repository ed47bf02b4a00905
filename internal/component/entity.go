package component

import (
	"emoji-breakout/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Entity is the single record every arena slot holds. The box it occupies
// is centered on Position with half extent HalfSize.
type Entity struct {
	Tags        Tags
	Position    geom.Vec2 // world units
	Velocity    geom.Vec2 // world units per second
	HalfSize    geom.Vec2
	CollideWith Tags // tests against entities whose Tags intersect this set
	Life        int
	Color       tcell.Color // tcell.ColorDefault means the renderer picks by tag
}

// Is reports whether the entity carries every flag in t.
func (e *Entity) Is(t Tags) bool { return e.Tags.Has(t) }

// Moving reports whether the entity has a nonzero velocity.
func (e *Entity) Moving() bool { return !e.Velocity.IsZero() }
