package system

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
)

// Prune removes blocks and balls whose life has reached zero and appends
// an event for each removal.
func Prune(a *ecs.Arena[component.Entity], events []Event) []Event {
	var doomed []ecs.EntityRef
	for ref, e := range a.Refs() {
		if e.Life == 0 && e.Tags.Intersects(component.TagBlock|component.TagBall) {
			doomed = append(doomed, ref)
		}
	}
	for _, ref := range doomed {
		e, ok := a.Remove(ref)
		if !ok {
			continue
		}
		kind := EventBlockBroken
		if e.Is(component.TagBall) {
			kind = EventBallRemoved
		}
		events = append(events, Event{Kind: kind, Subject: ref, Pos: e.Position})
	}
	return events
}

// Count returns how many live entities carry every flag in tag.
func Count(a *ecs.Arena[component.Entity], tag component.Tags) int {
	n := 0
	for e := range a.All() {
		if e.Is(tag) {
			n++
		}
	}
	return n
}
