package factory

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Arena is the entity store every constructor inserts into.
type Arena = ecs.Arena[component.Entity]

// BallHalfSize is the half extent of every ball.
var BallHalfSize = geom.V(0.75, 0.75)

// NewBall creates a one-life ball at pos moving with vel. Balls collide
// with walls and blocks; the paddle is added to the mask each tick while
// the ball falls.
func NewBall(a *Arena, pos, vel geom.Vec2) ecs.EntityRef {
	return a.Insert(component.Entity{
		Tags:        component.TagBall,
		Position:    pos,
		Velocity:    vel,
		HalfSize:    BallHalfSize,
		CollideWith: component.TagWall | component.TagBlock,
		Life:        1,
		Color:       tcell.ColorAqua,
	})
}

// NewBlock creates a stationary block with the given number of lives.
func NewBlock(a *Arena, pos, half geom.Vec2, life int, color tcell.Color) ecs.EntityRef {
	return a.Insert(component.Entity{
		Tags:     component.TagBlock,
		Position: pos,
		HalfSize: half,
		Life:     life,
		Color:    color,
	})
}

// NewWall creates a boundary wall. A dead wall costs a ball one life.
func NewWall(a *Arena, pos, half geom.Vec2, dead bool) ecs.EntityRef {
	tags := component.TagWall
	color := tcell.ColorMaroon
	if dead {
		tags = tags.With(component.TagDeadWall)
		color = tcell.ColorDarkRed
	}
	return a.Insert(component.Entity{
		Tags:     tags,
		Position: pos,
		HalfSize: half,
		Life:     1,
		Color:    color,
	})
}

// NewPaddle creates the player-controlled paddle.
func NewPaddle(a *Arena, pos, half geom.Vec2) ecs.EntityRef {
	return a.Insert(component.Entity{
		Tags:     component.TagPlayer,
		Position: pos,
		HalfSize: half,
		Life:     1,
		Color:    tcell.ColorLime,
	})
}

// NewBoundary surrounds the arena (centered on the origin, half extent
// arenaHalf) with four walls of half thickness t whose inner faces lie on
// the arena edge. The bottom wall is the dead wall. Walls are inserted top,
// bottom, left, right.
func NewBoundary(a *Arena, arenaHalf geom.Vec2, t float64) [4]ecs.EntityRef {
	horiz := geom.V(arenaHalf.X+2*t, t)
	vert := geom.V(t, arenaHalf.Y+2*t)
	return [4]ecs.EntityRef{
		NewWall(a, geom.V(0, arenaHalf.Y+t), horiz, false),
		NewWall(a, geom.V(0, -(arenaHalf.Y+t)), horiz, true),
		NewWall(a, geom.V(-(arenaHalf.X+t), 0), vert, false),
		NewWall(a, geom.V(arenaHalf.X+t, 0), vert, false),
	}
}
