package system

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/geom"
)

// Params tunes the resolution rules.
type Params struct {
	// PaddleEnglish scales the ball's horizontal offset from the paddle
	// center into its new x velocity after a paddle bounce.
	PaddleEnglish float64
}

// Resolve applies the contacts found this tick. Movers without a hit
// travel their full step; movers with a hit stop at the impact point and
// then the pairing rule for their tags runs. Each mutation goes through a
// fresh lookup, so a contact whose mover is gone is skipped.
// Events are appended to events and the extended slice is returned.
func Resolve(a *ecs.Arena[component.Entity], contacts []Contact, dt float64, p Params, events []Event) []Event {
	for _, c := range contacts {
		if !c.Hit {
			if e := a.GetMut(c.Mover); e != nil {
				e.Position = e.Position.Add(e.Velocity.Scale(dt))
			}
			continue
		}

		self, other := a.GetTwoMut(c.Mover, c.Other)
		if self == nil {
			continue
		}
		if other == nil {
			self.Position = self.Position.Add(self.Velocity.Scale(dt))
			continue
		}

		step := self.Velocity.Scale(dt * c.Collision.T)
		self.Position = self.Position.Add(step)
		n := c.Collision.Normal

		if !self.Is(component.TagBall) {
			continue
		}
		switch {
		case other.Is(component.TagBlock):
			self.Velocity = self.Velocity.Reflect(n)
			decrementLife(other)
			events = append(events, Event{Kind: EventBlockHit, Subject: c.Other, Other: c.Mover, Pos: self.Position})

		case other.Is(component.TagWall):
			self.Velocity = self.Velocity.Reflect(n)
			if other.Is(component.TagDeadWall) {
				decrementLife(self)
				events = append(events, Event{Kind: EventBallLost, Subject: c.Mover, Other: c.Other, Pos: self.Position})
			} else {
				events = append(events, Event{Kind: EventWallBounce, Subject: c.Mover, Other: c.Other, Pos: self.Position})
			}

		case other.Is(component.TagPlayer):
			bounceOffPaddle(self, other, step, n, p.PaddleEnglish)
			events = append(events, Event{Kind: EventPaddleHit, Subject: c.Mover, Other: c.Other, Pos: self.Position})
		}
	}
	return events
}

// bounceOffPaddle advances the ball a second partial step to make up for
// the paddle's own travel, bounces it, then replaces its x velocity with one
// proportional to where it struck the paddle.
func bounceOffPaddle(ball, paddle *component.Entity, step, n geom.Vec2, english float64) {
	ball.Position = ball.Position.Add(step)
	if n.X != 0 {
		ball.Velocity.Y = -ball.Velocity.Y
		if ball.Velocity.Dot(n) <= 0 {
			ball.Velocity.X = -ball.Velocity.X
		}
	} else {
		ball.Velocity = ball.Velocity.Reflect(n)
	}
	ball.Velocity.X = (ball.Position.X - paddle.Position.X) * english
}

// decrementLife takes one life, stopping at zero so pruning sees exactly zero
// even when two balls strike the same block in one tick.
func decrementLife(e *component.Entity) {
	if e.Life > 0 {
		e.Life--
	}
}
