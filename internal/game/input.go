package game

import (
	"emoji-breakout/internal/geom"
	"emoji-breakout/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Command is a request handled by the game itself rather than the
// simulation.
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandMute
)

// applyKey maps a key event onto the snapshot. Level keys become one-frame
// taps because a terminal reports no key releases.
func applyKey(ev *tcell.EventKey, in *input.Snapshot) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyPgUp:
		in.Tap(input.ButtonPrevLevel)
		return CommandNone
	case tcell.KeyPgDn:
		in.Tap(input.ButtonNextLevel)
		return CommandNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return CommandQuit
	case 'c':
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return CommandQuit
		}
	case 'm', 'M':
		return CommandMute
	case '[':
		in.Tap(input.ButtonPrevLevel)
	case ']':
		in.Tap(input.ButtonNextLevel)
	}
	return CommandNone
}

// applyMouse records the pointer position and button state. toWorld turns
// the cell under the pointer into world coordinates.
func applyMouse(ev *tcell.EventMouse, in *input.Snapshot, toWorld func(x, y int) geom.Vec2) {
	in.Pointer = toWorld(ev.Position())

	buttons := ev.Buttons()
	in.Set(input.ButtonDrag, buttons&tcell.Button1 != 0)
	in.Set(input.ButtonPrevLevel, buttons&tcell.Button2 != 0)
	in.Set(input.ButtonNextLevel, buttons&tcell.Button3 != 0)
}
