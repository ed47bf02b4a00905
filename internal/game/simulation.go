package game

import (
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/factory"
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/input"
	"emoji-breakout/internal/level"
	"emoji-breakout/internal/system"
	"errors"
	"iter"
	"log/slog"
)

var ErrNoLevels = errors.New("no levels to play")

// Transition says why the most recent level load happened.
type Transition uint8

const (
	TransitionNone    Transition = iota
	TransitionStart              // first tick
	TransitionReload             // last ball lost
	TransitionPrev               // previous-level button
	TransitionNext               // next-level button
	TransitionCleared            // every block broken
)

var transitionNames = [...]string{"none", "start", "reload", "prev", "next", "cleared"}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// Simulation owns the entity arena and advances it one frame at a time.
// It is not safe for concurrent use.
type Simulation struct {
	cfg    Config
	params system.Params
	levels []level.Level
	logger *slog.Logger

	arena       *ecs.Arena[component.Entity]
	initialized bool
	levelIndex  int
	arenaHalf   geom.Vec2
	lastLoad    Transition

	contacts []system.Contact
	events   []system.Event
}

// NewSimulation prepares a simulation over levels. Nothing is spawned until
// the first call to Simulate.
func NewSimulation(cfg Config, levels []level.Level, logger *slog.Logger) (*Simulation, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Simulation{
		cfg:    cfg,
		params: system.Params{PaddleEnglish: cfg.PaddleEnglish},
		levels: levels,
		logger: logger,
		arena:  ecs.NewArena[component.Entity](),
	}, nil
}

// Simulate runs one tick: controller, collision masks, contact search,
// resolution, pruning and finally the level transition check. The returned
// events are only valid until the next call. in may be nil.
func (s *Simulation) Simulate(in *input.Snapshot, dt float64) []system.Event {
	s.events = s.events[:0]
	if !s.initialized {
		s.initialized = true
		s.arenaHalf = s.cfg.ArenaHalf
		s.load(0, TransitionStart)
	}

	system.UpdateController(s.arena, in, dt, s.arenaHalf)
	system.UpdateMasks(s.arena)
	s.contacts = system.FindContacts(s.arena, dt, s.contacts)
	s.events = system.Resolve(s.arena, s.contacts, dt, s.params, s.events)
	s.events = system.Prune(s.arena, s.events)
	s.transition(in)
	return s.events
}

// transition reloads the current level when the last ball is gone, and
// moves between levels on button presses or once the blocks are cleared.
// At most one load happens per tick; a level change wins over a reload.
func (s *Simulation) transition(in *input.Snapshot) {
	target, why := s.levelIndex, TransitionNone
	if system.Count(s.arena, component.TagBall) == 0 {
		why = TransitionReload
	}
	switch {
	case in != nil && in.Button(input.ButtonPrevLevel).Pressed():
		target, why = s.levelIndex-1, TransitionPrev
	case in != nil && in.Button(input.ButtonNextLevel).Pressed():
		target, why = s.levelIndex+1, TransitionNext
	case why == TransitionNone && s.cfg.AdvanceOnClear && system.Count(s.arena, component.TagBlock) == 0:
		target, why = s.levelIndex+1, TransitionCleared
	}
	if why != TransitionNone {
		s.load(target, why)
	}
}

// load rebuilds the arena for level i (wrapped into range): boundary walls,
// paddle, then the level's own spawns.
func (s *Simulation) load(i int, why Transition) {
	n := len(s.levels)
	s.levelIndex = ((i % n) + n) % n
	s.lastLoad = why

	s.arena.Clear()
	factory.NewBoundary(s.arena, s.arenaHalf, s.cfg.WallThickness)
	factory.NewPaddle(s.arena, s.cfg.PaddlePos, s.cfg.PaddleHalf)
	lvl := s.levels[s.levelIndex]
	lvl.Populate(s.arena)

	s.events = append(s.events, system.Event{Kind: system.EventLevelLoaded})
	s.logger.Debug("level loaded", "index", s.levelIndex, "name", lvl.Name(), "reason", why, "entities", s.arena.Live())
}

// Entities yields a copy of every live entity.
func (s *Simulation) Entities() iter.Seq[component.Entity] {
	return func(yield func(component.Entity) bool) {
		for e := range s.arena.All() {
			if !yield(*e) {
				return
			}
		}
	}
}

// Counts returns the number of live balls and blocks.
func (s *Simulation) Counts() (balls, blocks int) {
	return system.Count(s.arena, component.TagBall), system.Count(s.arena, component.TagBlock)
}

// LastLoad returns why the current level was last (re)loaded.
func (s *Simulation) LastLoad() Transition { return s.lastLoad }

func (s *Simulation) ArenaHalfSize() geom.Vec2 { return s.cfg.ArenaHalf }
func (s *Simulation) LevelIndex() int          { return s.levelIndex }
func (s *Simulation) LevelCount() int          { return len(s.levels) }
func (s *Simulation) LevelName() string        { return s.levels[s.levelIndex].Name() }
