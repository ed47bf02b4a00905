package game

import (
	"emoji-breakout/internal/geom"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable parameters of a game session.
type Config struct {
	// ArenaHalf is the half extent of the playing field, centered on the
	// origin with y pointing up.
	ArenaHalf geom.Vec2
	// WallThickness is the half thickness of the four boundary walls.
	WallThickness float64

	PaddlePos  geom.Vec2
	PaddleHalf geom.Vec2
	// PaddleEnglish converts the ball's offset from the paddle center at
	// impact into its new horizontal speed.
	PaddleEnglish float64

	// AdvanceOnClear moves to the next level once every block is broken.
	AdvanceOnClear bool
	// GeneratedLevels is how many procedural levels follow the bundled ones.
	GeneratedLevels int
	// Seed drives level generation; zero picks a time-based seed.
	Seed int64

	FrameInterval time.Duration
	// MaxFrameTime caps the dt handed to the simulation after a stall.
	MaxFrameTime time.Duration

	Mute bool
}

// DefaultConfig returns the standard arena and timing.
func DefaultConfig() Config {
	return Config{
		ArenaHalf:       geom.V(85, 45),
		WallThickness:   2,
		PaddlePos:       geom.V(0, -40),
		PaddleHalf:      geom.V(10, 2),
		PaddleEnglish:   2,
		AdvanceOnClear:  true,
		GeneratedLevels: 6,
		FrameInterval:   16 * time.Millisecond,
		MaxFrameTime:    100 * time.Millisecond,
	}
}

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	switch {
	case c.ArenaHalf.X <= 0 || c.ArenaHalf.Y <= 0:
		return fmt.Errorf("%w: arena half extent %v", ErrInvalidConfig, c.ArenaHalf)
	case c.WallThickness <= 0:
		return fmt.Errorf("%w: wall thickness %v", ErrInvalidConfig, c.WallThickness)
	case c.PaddleHalf.X <= 0 || c.PaddleHalf.Y <= 0:
		return fmt.Errorf("%w: paddle half extent %v", ErrInvalidConfig, c.PaddleHalf)
	case c.PaddleHalf.X >= c.ArenaHalf.X:
		return fmt.Errorf("%w: paddle wider than the arena", ErrInvalidConfig)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval %v", ErrInvalidConfig, c.FrameInterval)
	case c.GeneratedLevels < 0:
		return fmt.Errorf("%w: generated levels %d", ErrInvalidConfig, c.GeneratedLevels)
	}
	return nil
}
