// emoji-breakout is a terminal brick breaker. Drag the paddle with the
// mouse, clear the blocks, and keep at least one ball in play.
package main

import (
	"context"
	"emoji-breakout/internal/audio"
	"emoji-breakout/internal/game"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
)

func main() {
	logFile := flag.String("log", "", "write debug logs to this file")
	profMode := flag.String("profile", "", "profile the run: cpu or mem")
	mute := flag.Bool("mute", false, "start with sound off")
	seed := flag.Int64("seed", 0, "level generation seed (0 = random)")
	generated := flag.Int("levels", game.DefaultConfig().GeneratedLevels, "number of generated levels after the bundled ones")
	noAdvance := flag.Bool("no-advance", false, "stay on a level after clearing it")
	flag.Parse()

	logger, closeLog, err := newLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown profile mode %q\n", *profMode)
		os.Exit(2)
	}

	cfg := game.DefaultConfig()
	cfg.Mute = *mute
	cfg.Seed = *seed
	cfg.GeneratedLevels = *generated
	cfg.AdvanceOnClear = !*noAdvance

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer sound.Cleanup()

	g, err := game.New(cfg, logger, game.WithSound(sound))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g.Run(ctx)
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the game, so nothing is ever
// logged to stderr while it runs.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
