package game

import (
	"emoji-breakout/assets"
	"emoji-breakout/internal/generate"
	"emoji-breakout/internal/level"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// BuildLevels returns the bundled layouts followed by cfg.GeneratedLevels
// procedural ones. Layouts that fail to parse or do not fit the arena are
// logged and skipped.
func BuildLevels(cfg Config, rng *rand.Rand, logger *slog.Logger) []level.Level {
	var levels []level.Level
	add := func(l *level.Layout) {
		if err := l.Validate(cfg.ArenaHalf); err != nil {
			logger.Warn("skipping level", "error", err)
			return
		}
		levels = append(levels, l)
	}

	for _, def := range assets.Layouts {
		l, err := level.Parse(def.Name, def.Rows)
		if err != nil {
			logger.Warn("skipping level", "error", err)
			continue
		}
		add(l)
	}
	for i := range cfg.GeneratedLevels {
		add(generate.Generate(levelConfig(i, cfg.GeneratedLevels, rng)))
	}
	return levels
}

// levelConfig builds a generate.Config for the i-th of n generated levels.
// Later levels are wider, taller, denser and tougher.
func levelConfig(i, n int, rng *rand.Rand) *generate.Config {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}

	return &generate.Config{
		Name:       fmt.Sprintf("Sector %d", i+1),
		Cols:       lerpi(8, generate.MaxCols, t),
		Rows:       lerpi(4, generate.MaxRows-1, t),
		Density:    0.45 + 0.45*t,
		LifeBudget: lerpi(0, 60, t),
		MaxLife:    lerpi(2, 9, t),
		Balls:      1 + rng.Intn(lerpi(1, 3, t)), // 1–3 balls late on
		Pattern:    generate.RandomPattern(rng),
		Rand:       rng,
	}
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}

// tagline returns the flavour line of a bundled layout, or "" for a
// generated one.
func tagline(name string) string {
	for _, def := range assets.Layouts {
		if def.Name == name {
			return def.Tagline
		}
	}
	return ""
}
