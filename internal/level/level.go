package level

import (
	"emoji-breakout/assets"
	"emoji-breakout/internal/component"
	"emoji-breakout/internal/ecs"
	"emoji-breakout/internal/factory"
	"emoji-breakout/internal/geom"
	"errors"
	"fmt"
	"strings"
)

// Level is one playable stage. Populate is handed an arena that already
// holds the boundary walls and the paddle and adds the stage's balls and
// blocks.
type Level interface {
	Name() string
	Populate(a *ecs.Arena[component.Entity])
}

var (
	ErrEmptyLayout = errors.New("empty layout")
	ErrUnknownCell = errors.New("unknown cell")
	ErrNoBlocks    = errors.New("layout has no blocks")
	ErrOutOfBounds = errors.New("spawn outside arena")
	ErrOverlap     = errors.New("overlapping spawns")
)

// Grid geometry shared by parsed and generated layouts.
const (
	CellWidth  = 12.0
	CellHeight = 5.0
	TopRowY    = 35.0
)

var (
	BlockHalfSize = geom.V(5, 2)

	// DefaultBallPos and DefaultBallVel are used when a layout places no
	// ball of its own.
	DefaultBallPos = geom.V(0, -20)
	DefaultBallVel = geom.V(-10, -40)
)

// BlockSpawn is one block of a layout.
type BlockSpawn struct {
	Pos  geom.Vec2
	Life int
}

// Layout is a level described by explicit spawn lists.
type Layout struct {
	name   string
	blocks []BlockSpawn
	balls  []geom.Vec2
}

// NewLayout builds a layout from spawn lists. A layout without balls gets a
// single ball at DefaultBallPos.
func NewLayout(name string, blocks []BlockSpawn, balls []geom.Vec2) *Layout {
	if len(balls) == 0 {
		balls = []geom.Vec2{DefaultBallPos}
	}
	return &Layout{name: name, blocks: blocks, balls: balls}
}

func (l *Layout) Name() string { return l.name }

// Blocks returns the block spawns in insertion order.
func (l *Layout) Blocks() []BlockSpawn { return l.blocks }

// Balls returns the ball spawn points in insertion order.
func (l *Layout) Balls() []geom.Vec2 { return l.balls }

// Populate inserts the layout's balls, then its blocks.
func (l *Layout) Populate(a *ecs.Arena[component.Entity]) {
	for _, pos := range l.balls {
		factory.NewBall(a, pos, DefaultBallVel)
	}
	for _, b := range l.blocks {
		factory.NewBlock(a, b.Pos, BlockHalfSize, b.Life, assets.BlockColor(b.Life))
	}
}

// Validate checks that every spawn fits inside the arena and that no two
// spawns overlap.
func (l *Layout) Validate(arenaHalf geom.Vec2) error {
	type box struct {
		pos, half geom.Vec2
		what      string
	}
	boxes := make([]box, 0, len(l.balls)+len(l.blocks))
	for _, p := range l.balls {
		boxes = append(boxes, box{p, factory.BallHalfSize, "ball"})
	}
	for _, b := range l.blocks {
		boxes = append(boxes, box{b.Pos, BlockHalfSize, "block"})
	}

	for i, b := range boxes {
		lo, hi := b.pos.Sub(b.half), b.pos.Add(b.half)
		if lo.X < -arenaHalf.X || lo.Y < -arenaHalf.Y || hi.X > arenaHalf.X || hi.Y > arenaHalf.Y {
			return fmt.Errorf("level %q: %s at %v: %w", l.name, b.what, b.pos, ErrOutOfBounds)
		}
		for _, o := range boxes[:i] {
			if geom.Overlaps(b.pos, b.half, o.pos, o.half) {
				return fmt.Errorf("level %q: %s at %v and %s at %v: %w", l.name, o.what, o.pos, b.what, b.pos, ErrOverlap)
			}
		}
	}
	return nil
}

// CellCenter returns the world position of a grid cell in a layout that is
// cols cells wide. Row 0 sits at TopRowY and columns are centered on x=0.
func CellCenter(row, col, cols int) geom.Vec2 {
	x := (float64(col) - float64(cols-1)/2) * CellWidth
	y := TopRowY - float64(row)*CellHeight
	return geom.V(x, y)
}

// Parse reads an ASCII layout, top row first. '#' is a one-life block, a
// digit 1-9 a block with that many lives, 'o' a ball, and '.' or ' ' an
// empty cell. Rows may differ in length; the widest one sets the grid.
func Parse(name string, rows []string) (*Layout, error) {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(strings.TrimRight(r, " ")))
	}
	if cols == 0 {
		return nil, fmt.Errorf("level %q: %w", name, ErrEmptyLayout)
	}

	var blocks []BlockSpawn
	var balls []geom.Vec2
	for row, r := range rows {
		for col, ch := range []byte(r) {
			pos := CellCenter(row, col, cols)
			switch {
			case ch == '.' || ch == ' ':
			case ch == '#':
				blocks = append(blocks, BlockSpawn{Pos: pos, Life: 1})
			case ch >= '1' && ch <= '9':
				blocks = append(blocks, BlockSpawn{Pos: pos, Life: int(ch - '0')})
			case ch == 'o':
				balls = append(balls, pos)
			default:
				return nil, fmt.Errorf("level %q: %w %q at row %d col %d", name, ErrUnknownCell, ch, row, col)
			}
		}
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("level %q: %w", name, ErrNoBlocks)
	}
	return NewLayout(name, blocks, balls), nil
}
