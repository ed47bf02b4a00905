package generate

import (
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/level"
	"math/rand"
)

// Pattern selects the overall brick arrangement.
type Pattern uint8

const (
	PatternRows Pattern = iota
	PatternMirror
	PatternCheckered
	PatternPillars
	patternCount
)

// Grid limits that keep every generated cell inside the default arena.
const (
	MaxCols = 14
	MaxRows = 10
)

// Config controls one generated layout.
type Config struct {
	Name       string
	Cols, Rows int
	Density    float64 // 0–1 chance that a cell (or row/column) gets bricks
	LifeBudget int     // extra lives spread over placed bricks
	MaxLife    int
	Balls      int
	Pattern    Pattern
	Rand       *rand.Rand
}

// RandomPattern picks one of the patterns uniformly.
func RandomPattern(rng *rand.Rand) Pattern {
	return Pattern(rng.Intn(int(patternCount)))
}

// Generate builds a brick layout. Cells are filled according to the
// pattern, at least one brick is always placed, and then the life budget is
// spent on random bricks up to MaxLife each. With more than one ball the
// balls are spread over distinct columns two rows below the bricks.
func Generate(cfg *Config) *level.Layout {
	cols := clampInt(cfg.Cols, 1, MaxCols)
	rows := clampInt(cfg.Rows, 1, MaxRows)
	maxLife := max(cfg.MaxLife, 1)

	life := make([][]int, rows)
	for r := range life {
		life[r] = make([]int, cols)
	}
	fill(life, cfg)

	placed := 0
	for r := range life {
		for c := range life[r] {
			placed += life[r][c]
		}
	}
	if placed == 0 {
		life[0][cols/2] = 1
	}

	spendLives(life, cfg, maxLife)

	var blocks []level.BlockSpawn
	for r := range life {
		for c, l := range life[r] {
			if l > 0 {
				blocks = append(blocks, level.BlockSpawn{Pos: level.CellCenter(r, c, cols), Life: l})
			}
		}
	}

	var balls []geom.Vec2
	if n := min(cfg.Balls, cols-1); n > 1 {
		for i := range n {
			col := (i + 1) * cols / (n + 1)
			balls = append(balls, level.CellCenter(rows+1, col, cols))
		}
	}
	return level.NewLayout(cfg.Name, blocks, balls)
}

func fill(life [][]int, cfg *Config) {
	rows, cols := len(life), len(life[0])
	hit := func() bool { return cfg.Rand.Float64() < cfg.Density }

	switch cfg.Pattern {
	case PatternRows:
		for r := range rows {
			if hit() {
				for c := range cols {
					life[r][c] = 1
				}
			}
		}
	case PatternMirror:
		for r := range rows {
			for c := range (cols + 1) / 2 {
				if hit() {
					life[r][c] = 1
					life[r][cols-1-c] = 1
				}
			}
		}
	case PatternCheckered:
		for r := range rows {
			for c := range cols {
				if (r+c)%2 == 0 && hit() {
					life[r][c] = 1
				}
			}
		}
	case PatternPillars:
		for c := range cols {
			if c%2 == 0 && hit() {
				for r := range rows {
					life[r][c] = 1
				}
			}
		}
	}
}

// spendLives hands out cfg.LifeBudget extra lives. Mirrored layouts stay
// symmetric: both twins gain a life together.
func spendLives(life [][]int, cfg *Config, maxLife int) {
	cols := len(life[0])
	type cell struct{ r, c int }
	budget := cfg.LifeBudget
	for budget > 0 {
		var candidates []cell
		for r := range life {
			for c, l := range life[r] {
				if l == 0 || l >= maxLife {
					continue
				}
				if cfg.Pattern == PatternMirror && c > cols-1-c {
					continue
				}
				candidates = append(candidates, cell{r, c})
			}
		}
		if len(candidates) == 0 {
			return
		}
		pick := candidates[cfg.Rand.Intn(len(candidates))]
		life[pick.r][pick.c]++
		budget--
		if twin := cols - 1 - pick.c; cfg.Pattern == PatternMirror && twin != pick.c {
			life[pick.r][twin]++
			budget--
		}
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
