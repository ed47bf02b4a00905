// emoji-breakout-server serves the game over SSH. Every connection gets its
// own game on its own screen. Build:
//
//	go build -o emoji-breakout-server ./cmd/server
//
// Usage:
//
//	./emoji-breakout-server [--port 2222] [--key server_host_key]
//
// Connect with a PTY and mouse reporting:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"emoji-breakout/internal/game"
	internalssh "emoji-breakout/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds the player name shown in the HUD and the run log.
const maxNameBytes = 16

// defaultTerm is used when the client sends no TERM or one we do not trust.
const defaultTerm = "xterm-256color"

// allowedTerms are the terminal types whose terminfo entries tcell ships.
// TERM comes from the client, so anything else falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu serializes os.Setenv("TERM") with screen creation, which reads it.
var termMu sync.Mutex

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// handleSession runs one game for the lifetime of the connection.
func handleSession(s gossh.Session, logger *slog.Logger) {
	player := sanitizeName(s.User())
	log := logger.With("remote", s.RemoteAddr().String(), "player", player)

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := pty.Term
	if !allowedTerms[term] {
		log.Info("unsupported TERM, using default", "term", term, "default", defaultTerm)
		term = defaultTerm
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(screen, game.DefaultConfig(), log, game.WithPlayer(player))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		return
	}
	log.Info("session started", "term", term)
	g.Run(s.Context())
	log.Info("session ended")
}

// sanitizeName drops non-printable runes from an SSH user name and cuts it
// to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "emoji-breakout server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Warn("cannot persist host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
