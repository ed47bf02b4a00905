// Package ssh adapts a gliderlabs SSH session to the tcell.Tty interface so
// a game can draw on a remote terminal.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty is a tcell.Tty over one SSH session. Reads are the client's
// keystrokes and mouse reports, writes go to its terminal.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// NewSessionTty wraps s. pty carries the initial window size; winCh delivers
// the client's later window changes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, winCh: winCh, window: pty.Window}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// The channel is opened and flushed by the SSH server, not the screen.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts a
// watcher that lives until the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching
	t.watching = true
	t.mu.Unlock()
	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	done := t.session.Context().Done()
	for {
		select {
		case <-done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			cb := t.onResize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}
