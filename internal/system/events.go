package system

import (
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/geom"
)

// EventKind classifies something that happened during a tick.
type EventKind uint8

const (
	EventWallBounce   EventKind = iota // ball reflected off a plain wall
	EventBlockHit                      // ball reflected off a block and took a life from it
	EventPaddleHit                     // ball bounced off the paddle
	EventBallLost                      // ball touched the dead wall and lost a life
	EventBlockBroken                   // block pruned at zero life
	EventBallRemoved                   // ball pruned at zero life
	EventLevelLoaded                   // arena cleared and repopulated
)

var eventNames = [...]string{
	EventWallBounce:  "wall-bounce",
	EventBlockHit:    "block-hit",
	EventPaddleHit:   "paddle-hit",
	EventBallLost:    "ball-lost",
	EventBlockBroken: "block-broken",
	EventBallRemoved: "ball-removed",
	EventLevelLoaded: "level-loaded",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one tick occurrence. Subject is the entity it happened to;
// Other is the entity on the far side of a collision, if any. Refs may
// already be stale by the time the event is read.
type Event struct {
	Kind    EventKind
	Subject ecs.EntityRef
	Other   ecs.EntityRef
	Pos     geom.Vec2
}
