package generate

import (
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/level"
	"math/rand"
	"reflect"
	"testing"
)

func defaultTestConfig(seed int64) *Config {
	return &Config{
		Name:       "test",
		Cols:       10,
		Rows:       6,
		Density:    0.6,
		LifeBudget: 12,
		MaxLife:    4,
		Balls:      1,
		Pattern:    PatternMirror,
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

func totalLife(l *level.Layout) int {
	n := 0
	for _, b := range l.Blocks() {
		n += b.Life
	}
	return n
}

func TestGenerateDeterministic(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		a := Generate(defaultTestConfig(seed))
		b := Generate(defaultTestConfig(seed))
		if !reflect.DeepEqual(a.Blocks(), b.Blocks()) || !reflect.DeepEqual(a.Balls(), b.Balls()) {
			t.Fatalf("seed=%d: layouts differ between runs", seed)
		}
	}
}

func TestGenerateAlwaysPlacesABlock(t *testing.T) {
	for p := range patternCount {
		cfg := defaultTestConfig(1)
		cfg.Pattern = p
		cfg.Density = 0
		cfg.LifeBudget = 0
		l := Generate(cfg)
		if len(l.Blocks()) != 1 {
			t.Errorf("pattern=%d: got %d blocks with zero density, want 1", p, len(l.Blocks()))
		}
	}
}

func TestGenerateFullDensityRows(t *testing.T) {
	cfg := defaultTestConfig(3)
	cfg.Pattern = PatternRows
	cfg.Density = 1
	cfg.LifeBudget = 0
	l := Generate(cfg)
	if got, want := len(l.Blocks()), cfg.Cols*cfg.Rows; got != want {
		t.Fatalf("got %d blocks, want %d", got, want)
	}
}

func TestGenerateMirrorIsSymmetric(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		l := Generate(defaultTestConfig(seed))
		at := make(map[geom.Vec2]int)
		for _, b := range l.Blocks() {
			at[b.Pos] = b.Life
		}
		for pos, life := range at {
			twin := geom.V(-pos.X, pos.Y)
			if at[twin] != life {
				t.Fatalf("seed=%d: block at %v has life %d, its mirror %d", seed, pos, life, at[twin])
			}
		}
	}
}

func TestGenerateLifeBudget(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		cfg.Pattern = PatternRows
		cfg.Density = 1
		l := Generate(cfg)
		if got, want := totalLife(l), len(l.Blocks())+cfg.LifeBudget; got != want {
			t.Errorf("seed=%d: total life %d, want %d", seed, got, want)
		}
		for _, b := range l.Blocks() {
			if b.Life < 1 || b.Life > cfg.MaxLife {
				t.Fatalf("seed=%d: block life %d outside [1,%d]", seed, b.Life, cfg.MaxLife)
			}
		}
	}
}

func TestGenerateLifeCappedByMaxLife(t *testing.T) {
	cfg := defaultTestConfig(5)
	cfg.Pattern = PatternRows
	cfg.Density = 1
	cfg.MaxLife = 2
	cfg.LifeBudget = 10_000
	l := Generate(cfg)
	if got, want := totalLife(l), 2*len(l.Blocks()); got != want {
		t.Fatalf("total life %d, want every block at the cap (%d)", got, want)
	}
}

func TestGenerateClampsGrid(t *testing.T) {
	cfg := defaultTestConfig(2)
	cfg.Cols, cfg.Rows = 100, 100
	cfg.Pattern = PatternRows
	cfg.Density = 1
	cfg.LifeBudget = 0
	l := Generate(cfg)
	if got := len(l.Blocks()); got != MaxCols*MaxRows {
		t.Fatalf("got %d blocks, want %d", got, MaxCols*MaxRows)
	}
}

func TestGenerateFitsArena(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		cfg := &Config{
			Name:       "fit",
			Cols:       MaxCols,
			Rows:       MaxRows,
			Density:    rng.Float64(),
			LifeBudget: rng.Intn(40),
			MaxLife:    1 + rng.Intn(9),
			Balls:      rng.Intn(5),
			Pattern:    RandomPattern(rng),
			Rand:       rng,
		}
		if err := Generate(cfg).Validate(geom.V(85, 45)); err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
	}
}

func TestGenerateSpreadsBalls(t *testing.T) {
	cfg := defaultTestConfig(4)
	cfg.Balls = 3
	l := Generate(cfg)
	balls := l.Balls()
	if len(balls) != 3 {
		t.Fatalf("got %d balls, want 3", len(balls))
	}
	for i := 1; i < len(balls); i++ {
		if balls[i].X <= balls[i-1].X {
			t.Errorf("balls not spread left to right: %v", balls)
		}
	}
}
