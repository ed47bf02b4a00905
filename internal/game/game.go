package game

import (
	"context"
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/input"
	"emoji-breakout/internal/render"
	"emoji-breakout/internal/system"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

// maxMessages bounds the HUD message history.
const maxMessages = 10

// Sound is the audio feedback driven by tick events.
type Sound interface {
	PlayBounce()
	PlayPaddle()
	PlayBlockHit()
	PlayBreak()
	PlayLose()
	PlayLevel()
	SetMuted(muted bool)
}

type silentSound struct{}

func (silentSound) PlayBounce()   {}
func (silentSound) PlayPaddle()   {}
func (silentSound) PlayBlockHit() {}
func (silentSound) PlayBreak()    {}
func (silentSound) PlayLose()     {}
func (silentSound) PlayLevel()    {}
func (silentSound) SetMuted(bool) {}

// Option customizes a Game.
type Option func(*Game)

// WithSound routes tick events to s instead of discarding them.
func WithSound(s Sound) Option {
	return func(g *Game) { g.sound = s }
}

// WithPlayer names the player in the greeting and the run log.
func WithPlayer(name string) Option {
	return func(g *Game) { g.runLog.Player = name }
}

// Game is the interactive shell around a Simulation: it turns terminal
// events into input, runs the frame clock and draws the result.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sim      *Simulation
	sound    Sound
	cfg      Config
	logger   *slog.Logger

	input    input.Snapshot
	messages []string
	muted    bool
	runLog   RunLog
}

// New creates a Game on the process terminal.
func New(cfg Config, logger *slog.Logger, opts ...Option) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg, logger, opts...)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game on an already initialized screen, such as
// one backed by an SSH session. The Game takes ownership of the screen.
func NewWithScreen(screen tcell.Screen, cfg Config, logger *slog.Logger, opts ...Option) (*Game, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	levels := BuildLevels(cfg, rand.New(rand.NewSource(seed)), logger)
	sim, err := NewSimulation(cfg, levels, logger)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	screen.EnableMouse()
	pad := 2 * cfg.WallThickness
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.ArenaHalf.Add(geom.V(pad, pad))),
		sim:      sim,
		sound:    silentSound{},
		cfg:      cfg,
		logger:   logger,
		muted:    cfg.Mute,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sound.SetMuted(g.muted)
	logger.Info("game created", "levels", len(levels), "seed", seed, "player", g.runLog.Player)
	return g, nil
}

// Run drives the frame loop until the player quits, ctx is done, or the
// screen stops delivering events. The screen is finalized and the run log
// saved before Run returns.
func (g *Game) Run(ctx context.Context) {
	start := time.Now()
	g.runLog.Timestamp = start

	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	go pollEvents(g.screen, events, stop)
	defer func() {
		close(stop)
		g.screen.Fini()
		g.runLog.DurationSec = time.Since(start).Seconds()
		saveRunLog(g.runLog, g.logger)
		g.logger.Info("game over", "levels", len(g.runLog.LevelsVisited), "blocks", g.runLog.BlocksBroken)
	}()

	if g.runLog.Player != "" {
		g.addMessage(fmt.Sprintf("Welcome, %s.", g.runLog.Player))
	}
	g.addMessage("Drag with the left button to steer. [ ] change level, m mutes, q quits.")

	ticker := time.NewTicker(g.cfg.FrameInterval)
	defer ticker.Stop()
	last := start
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || g.handleEvent(ev) == CommandQuit {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			if g.cfg.MaxFrameTime > 0 {
				dt = min(dt, g.cfg.MaxFrameTime)
			}
			last = now
			g.Step(dt.Seconds())
			g.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or stop
// is closed.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, stop <-chan struct{}) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-stop:
			return
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		cmd := applyKey(ev, &g.input)
		if cmd == CommandMute {
			g.muted = !g.muted
			g.sound.SetMuted(g.muted)
		}
		return cmd
	case *tcell.EventMouse:
		applyMouse(ev, &g.input, g.renderer.ScreenToWorld)
	}
	return CommandNone
}

// Step advances the simulation by dt seconds with the input gathered since
// the previous step, and reacts to what happened.
func (g *Game) Step(dt float64) {
	events := g.sim.Simulate(&g.input, dt)
	g.input.Advance()
	g.runLog.record(events)

	for _, ev := range events {
		switch ev.Kind {
		case system.EventWallBounce:
			g.sound.PlayBounce()
		case system.EventPaddleHit:
			g.sound.PlayPaddle()
		case system.EventBlockHit:
			g.sound.PlayBlockHit()
		case system.EventBlockBroken:
			g.sound.PlayBreak()
		case system.EventBallLost:
			g.sound.PlayLose()
		case system.EventLevelLoaded:
			g.sound.PlayLevel()
			g.levelLoaded()
		}
	}
}

func (g *Game) levelLoaded() {
	name := g.sim.LevelName()
	switch g.sim.LastLoad() {
	case TransitionReload:
		g.runLog.Reloads++
		g.addMessage(fmt.Sprintf("Out of balls. %s starts over.", name))
		return
	case TransitionCleared:
		g.runLog.LevelsCleared++
		g.addMessage("Level cleared!")
	}
	g.runLog.visit(name)
	msg := fmt.Sprintf("Level %d: %s", g.sim.LevelIndex()+1, name)
	if line := tagline(name); line != "" {
		msg += " - " + line
	}
	g.addMessage(msg)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.sim.Entities())
	balls, blocks := g.sim.Counts()
	g.renderer.DrawHUD(render.HUD{
		LevelIndex: g.sim.LevelIndex(),
		LevelCount: g.sim.LevelCount(),
		LevelName:  g.sim.LevelName(),
		Balls:      balls,
		Blocks:     blocks,
		Muted:      g.muted,
		Messages:   g.messages,
	})
}
