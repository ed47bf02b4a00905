package system

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/factory"
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/input"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

var testParams = Params{PaddleEnglish: 2}

// tick runs the physics steps in pipeline order, without level handling.
func tick(a *ecs.Arena[component.Entity], in *input.Snapshot, dt float64) []Event {
	UpdateController(a, in, dt, geom.V(85, 45))
	UpdateMasks(a)
	contacts := FindContacts(a, dt, nil)
	events := Resolve(a, contacts, dt, testParams, nil)
	return Prune(a, events)
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestBallBreaksBlockHeadOn(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	ball := factory.NewBall(a, geom.V(0, 0), geom.V(0, 20))
	block := factory.NewBlock(a, geom.V(0, 5), geom.V(5, 2), 1, tcell.ColorRed)

	UpdateMasks(a)
	contacts := FindContacts(a, 0.2, nil)
	if len(contacts) != 1 || !contacts[0].Hit || contacts[0].Other != block {
		t.Fatalf("contacts = %+v; want one hit against the block", contacts)
	}
	events := Resolve(a, contacts, 0.2, testParams, nil)

	b, ok := a.Get(block)
	if !ok || b.Life != 0 {
		t.Fatalf("block life = %d (live=%v); want 0 and still present before prune", b.Life, ok)
	}
	e, _ := a.Get(ball)
	if e.Velocity != geom.V(0, -20) {
		t.Errorf("ball velocity = %v; want (0,-20)", e.Velocity)
	}
	if !approx(e.Position.Y, 2.25) {
		t.Errorf("ball stopped at y=%v; want the impact point 2.25", e.Position.Y)
	}
	if !hasEvent(events, EventBlockHit) {
		t.Error("expected a block-hit event")
	}

	events = Prune(a, nil)
	if a.Contains(block) {
		t.Fatal("block at zero life must be pruned")
	}
	if !a.Contains(ball) {
		t.Fatal("ball must survive")
	}
	if !hasEvent(events, EventBlockBroken) {
		t.Error("expected a block-broken event")
	}
}

func TestMultiLifeBlockSurvivesOneHit(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBall(a, geom.V(0, 0), geom.V(0, 20))
	block := factory.NewBlock(a, geom.V(0, 5), geom.V(5, 2), 2, tcell.ColorRed)

	tick(a, nil, 0.2)
	b, ok := a.Get(block)
	if !ok || b.Life != 1 {
		t.Fatalf("block life = %d (live=%v); want 1", b.Life, ok)
	}
}

func TestTwoBallsOnOneBlockStopAtZero(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBall(a, geom.V(-2, 0), geom.V(0, 20))
	factory.NewBall(a, geom.V(2, 0), geom.V(0, 20))
	block := factory.NewBlock(a, geom.V(0, 5), geom.V(5, 2), 1, tcell.ColorRed)

	UpdateMasks(a)
	Resolve(a, FindContacts(a, 0.2, nil), 0.2, testParams, nil)
	b, _ := a.Get(block)
	if b.Life != 0 {
		t.Fatalf("block life = %d; want 0, never negative", b.Life)
	}
	Prune(a, nil)
	if a.Contains(block) {
		t.Fatal("block must be pruned")
	}
}

func TestClearPathAdvancesFully(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	ball := factory.NewBall(a, geom.V(0, 0), geom.V(10, 5))
	tick(a, nil, 0.5)
	e, _ := a.Get(ball)
	if e.Position != geom.V(5, 2.5) {
		t.Fatalf("ball at %v; want (5,2.5)", e.Position)
	}
}

func TestEarliestObstacleWins(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBall(a, geom.V(0, 0), geom.V(0, 100))
	far := factory.NewBlock(a, geom.V(0, 20), geom.V(5, 2), 1, tcell.ColorRed)
	near := factory.NewBlock(a, geom.V(0, 10), geom.V(5, 2), 1, tcell.ColorRed)

	UpdateMasks(a)
	contacts := FindContacts(a, 1, nil)
	if len(contacts) != 1 || contacts[0].Other != near {
		t.Fatalf("expected the nearer block %v, got %+v (far=%v)", near, contacts, far)
	}
}

func TestEqualTimeKeepsEnumerationOrder(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBall(a, geom.V(0, 0), geom.V(0, 100))
	first := factory.NewBlock(a, geom.V(-3, 10), geom.V(5, 2), 1, tcell.ColorRed)
	factory.NewBlock(a, geom.V(3, 10), geom.V(5, 2), 1, tcell.ColorRed)

	UpdateMasks(a)
	contacts := FindContacts(a, 1, nil)
	if contacts[0].Other != first {
		t.Fatalf("tie must keep the first enumerated block, got %v", contacts[0].Other)
	}
}

func TestMovingAwayFromFaceIsIgnored(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	// Ball resting exactly on the block's bottom face, heading away from it.
	ball := factory.NewBall(a, geom.V(0, 2.25), geom.V(0, -20))
	block := factory.NewBlock(a, geom.V(0, 5), geom.V(5, 2), 1, tcell.ColorRed)

	tick(a, nil, 0.1)
	if b, _ := a.Get(block); b.Life != 1 {
		t.Fatal("ball leaving the face must not hit the block")
	}
	e, _ := a.Get(ball)
	if !approx(e.Position.Y, 0.25) {
		t.Fatalf("ball at y=%v; want 0.25 after a full step", e.Position.Y)
	}
}

func TestMaskTracksFallingBalls(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	falling := factory.NewBall(a, geom.V(0, 0), geom.V(0, -1))
	rising := factory.NewBall(a, geom.V(0, 0), geom.V(0, 1))
	a.GetMut(rising).CollideWith = a.GetMut(rising).CollideWith.With(component.TagPlayer)

	UpdateMasks(a)
	if e, _ := a.Get(falling); !e.CollideWith.Has(component.TagPlayer) {
		t.Error("falling ball must collide with the paddle")
	}
	if e, _ := a.Get(rising); e.CollideWith.Has(component.TagPlayer) {
		t.Error("rising ball must not collide with the paddle")
	}
	if e, _ := a.Get(rising); !e.CollideWith.Has(component.TagWall | component.TagBlock) {
		t.Error("mask update must leave other flags alone")
	}
}

func TestRisingBallPassesThroughPaddle(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))
	// Overlapping the paddle and heading up, as right after a bounce.
	ball := factory.NewBall(a, geom.V(0, -43), geom.V(0, 30))

	UpdateMasks(a)
	contacts := FindContacts(a, 0.1, nil)
	for _, c := range contacts {
		if c.Mover == ball && c.Hit {
			t.Fatalf("rising ball registered a hit: %+v", c)
		}
	}
}

func TestPaddleBounceAppliesEnglish(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	paddle := factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))
	ball := factory.NewBall(a, geom.V(3, -35), geom.V(0, -20))

	events := tick(a, nil, 0.2)

	e, _ := a.Get(ball)
	if e.Velocity.Y != 20 {
		t.Errorf("ball vy = %v; want 20 after the bounce", e.Velocity.Y)
	}
	p, _ := a.Get(paddle)
	if want := (e.Position.X - p.Position.X) * testParams.PaddleEnglish; e.Velocity.X != want {
		t.Errorf("ball vx = %v; want %v from the hit offset", e.Velocity.X, want)
	}
	if e.Velocity.X != 6 {
		t.Errorf("ball vx = %v; want 6", e.Velocity.X)
	}
	// Advanced twice by the partial step (0, -2.25).
	if !approx(e.Position.Y, -39.5) {
		t.Errorf("ball y = %v; want -39.5", e.Position.Y)
	}
	if !hasEvent(events, EventPaddleHit) {
		t.Error("expected a paddle-hit event")
	}
}

func TestPaddleSideHitFlipsBothAxes(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))
	// Falling diagonally into the paddle's right side.
	ball := factory.NewBall(a, geom.V(12, -39), geom.V(-20, -1))

	UpdateMasks(a)
	contacts := FindContacts(a, 0.1, nil)
	if len(contacts) != 1 || !contacts[0].Hit || contacts[0].Collision.Normal != geom.V(1, 0) {
		t.Fatalf("expected a right-face hit, got %+v", contacts)
	}
	Resolve(a, contacts, 0.1, Params{PaddleEnglish: 0}, nil)

	e, _ := a.Get(ball)
	if e.Velocity.Y != 1 {
		t.Errorf("vy = %v; want flipped to 1", e.Velocity.Y)
	}
	if e.Velocity.X != 0 {
		t.Errorf("vx = %v; want overridden by zero English", e.Velocity.X)
	}
}

func TestDeadWallCostsBallALife(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBoundary(a, geom.V(85, 45), 2)
	ball := factory.NewBall(a, geom.V(0, -44), geom.V(0, -20))

	events := tick(a, nil, 0.1)
	if a.Contains(ball) {
		t.Fatal("ball with no lives left must be pruned")
	}
	if !hasEvent(events, EventBallLost) || !hasEvent(events, EventBallRemoved) {
		t.Fatalf("events = %+v; want ball-lost and ball-removed", events)
	}
}

func TestPlainWallReflects(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBoundary(a, geom.V(85, 45), 2)
	ball := factory.NewBall(a, geom.V(83, 0), geom.V(40, 10))

	events := tick(a, nil, 0.1)
	e, ok := a.Get(ball)
	if !ok || e.Life != 1 {
		t.Fatal("plain wall must not cost a life")
	}
	if e.Velocity != geom.V(-40, 10) {
		t.Errorf("velocity = %v; want (-40,10)", e.Velocity)
	}
	if !hasEvent(events, EventWallBounce) {
		t.Error("expected a wall-bounce event")
	}
}

func TestMovingPaddleCatchesBall(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	paddle := factory.NewPaddle(a, geom.V(-20, -40), geom.V(10, 2))
	// Ball falling just beside the paddle; the paddle sweeps under it.
	factory.NewBall(a, geom.V(-5, -37), geom.V(0, -5))

	var in input.Snapshot
	in.Set(input.ButtonDrag, true)
	in.Pointer = geom.V(0, 0)
	events := tick(a, &in, 0.1)
	if !hasEvent(events, EventPaddleHit) {
		t.Fatalf("expected the moving paddle to catch the ball, events=%+v", events)
	}
	if p, _ := a.Get(paddle); !approx(p.Position.X, 0) {
		t.Errorf("paddle x = %v; want 0", p.Position.X)
	}
}

func TestControllerFollowsPointerWhileDragging(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	paddle := factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))

	var in input.Snapshot
	in.Pointer = geom.V(30, 12)
	UpdateController(a, &in, 0.5, geom.V(85, 45))
	if p, _ := a.Get(paddle); !p.Velocity.IsZero() {
		t.Fatalf("without drag the paddle must hold, got %v", p.Velocity)
	}

	in.Set(input.ButtonDrag, true)
	UpdateController(a, &in, 0.5, geom.V(85, 45))
	if p, _ := a.Get(paddle); p.Velocity != geom.V(60, 0) {
		t.Fatalf("velocity = %v; want (60,0)", p.Velocity)
	}
}

func TestControllerClampsToArena(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	paddle := factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))

	var in input.Snapshot
	in.Set(input.ButtonDrag, true)
	in.Pointer = geom.V(500, 0)
	UpdateController(a, &in, 1, geom.V(85, 45))
	if p, _ := a.Get(paddle); p.Velocity.X != 75 {
		t.Fatalf("vx = %v; want 75 (clamped to the right wall)", p.Velocity.X)
	}
}

func TestControllerZeroDt(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	paddle := factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))

	var in input.Snapshot
	in.Set(input.ButtonDrag, true)
	in.Pointer = geom.V(20, 0)
	for _, dt := range []float64{0, -1} {
		UpdateController(a, &in, dt, geom.V(85, 45))
		p, _ := a.Get(paddle)
		if !p.Velocity.IsZero() || !p.Velocity.IsFinite() {
			t.Fatalf("dt=%v: velocity = %v; want zero", dt, p.Velocity)
		}
	}
	in.Pointer = geom.V(math.NaN(), 0)
	UpdateController(a, &in, 1, geom.V(85, 45))
	if p, _ := a.Get(paddle); !p.Velocity.IsFinite() {
		t.Fatalf("NaN pointer leaked into velocity %v", p.Velocity)
	}
}

func TestZeroDtTickIsHarmless(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBoundary(a, geom.V(85, 45), 2)
	factory.NewPaddle(a, geom.V(0, -40), geom.V(10, 2))
	ball := factory.NewBall(a, geom.V(0, 0), geom.V(-10, -40))

	tick(a, nil, 0)
	e, _ := a.Get(ball)
	if e.Position != geom.V(0, 0) {
		t.Fatalf("ball moved to %v with dt=0", e.Position)
	}
}

func TestCount(t *testing.T) {
	a := ecs.NewArena[component.Entity]()
	factory.NewBoundary(a, geom.V(85, 45), 2)
	factory.NewBall(a, geom.V(0, 0), geom.V(1, 1))
	if n := Count(a, component.TagWall); n != 4 {
		t.Errorf("walls = %d; want 4", n)
	}
	if n := Count(a, component.TagWall|component.TagDeadWall); n != 1 {
		t.Errorf("dead walls = %d; want 1", n)
	}
	if n := Count(a, component.TagBall); n != 1 {
		t.Errorf("balls = %d; want 1", n)
	}
}
