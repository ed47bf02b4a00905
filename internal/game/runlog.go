package game

import (
	"emoji-breakout/internal/system"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics for one play session.
type RunLog struct {
	Timestamp     time.Time `json:"timestamp"`
	Player        string    `json:"player,omitempty"`
	DurationSec   float64   `json:"duration_sec"`
	LevelsVisited []string  `json:"levels_visited"`
	LevelsCleared int       `json:"levels_cleared"`
	Reloads       int       `json:"reloads"`
	BlocksBroken  int       `json:"blocks_broken"`
	BlockHits     int       `json:"block_hits"`
	PaddleHits    int       `json:"paddle_hits"`
	BallsLost     int       `json:"balls_lost"`
}

// record folds one tick's events into the log. Level loads are recorded by
// the caller, which knows why the level changed.
func (rl *RunLog) record(events []system.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case system.EventBlockBroken:
			rl.BlocksBroken++
		case system.EventBlockHit:
			rl.BlockHits++
		case system.EventPaddleHit:
			rl.PaddleHits++
		case system.EventBallLost:
			rl.BallsLost++
		}
	}
}

// visit appends name unless it is already the last level visited.
func (rl *RunLog) visit(name string) {
	if n := len(rl.LevelsVisited); n > 0 && rl.LevelsVisited[n-1] == name {
		return
	}
	rl.LevelsVisited = append(rl.LevelsVisited, name)
}

// saveRunLog appends the finished session as a single JSON line to
// runs.jsonl. Errors are logged and never end the game.
func saveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// runLogDir returns the directory where run logs are stored:
// $XDG_DATA_HOME/emoji-breakout, defaulting to ~/.local/share/emoji-breakout.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "emoji-breakout"), nil
}
