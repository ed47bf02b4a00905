// Package input holds the per-frame input snapshot the simulation reads.
// It knows nothing about the terminal; the game package fills it in.
package input

import "emoji-breakout/internal/geom"

// Button names one tracked control.
type Button uint8

const (
	ButtonDrag      Button = iota // held: paddle follows the pointer
	ButtonPrevLevel               // pressed: load the previous level
	ButtonNextLevel               // pressed: load the next level
	ButtonCount
)

// ButtonState is the held state of a control this frame and last frame.
type ButtonState struct {
	Down    bool
	WasDown bool
	pulse   bool // set by Tap; released at the next Advance
}

func (b ButtonState) IsDown() bool   { return b.Down }
func (b ButtonState) Pressed() bool  { return b.Down && !b.WasDown }
func (b ButtonState) Released() bool { return !b.Down && b.WasDown }

// Snapshot is everything the simulation needs from the input devices for
// one frame.
type Snapshot struct {
	Pointer geom.Vec2 // world coordinates
	Buttons [ButtonCount]ButtonState
}

// Advance starts a new frame: the current state becomes the previous one,
// and one-frame taps are released.
func (s *Snapshot) Advance() {
	for i := range s.Buttons {
		b := &s.Buttons[i]
		b.WasDown = b.Down
		if b.pulse {
			b.Down = false
			b.pulse = false
		}
	}
}

// Set records the held state of b, as reported by a device with both press
// and release events. An "up" report does not cancel a pending Tap; the tap
// is released by the next Advance.
func (s *Snapshot) Set(b Button, down bool) {
	if b >= ButtonCount || (!down && s.Buttons[b].pulse) {
		return
	}
	s.Buttons[b].Down = down
	s.Buttons[b].pulse = false
}

// Tap records a press with no matching release event (terminal keys).
// The button reads as down for the current frame only, and every tap is a
// fresh press even when the previous frame also had one.
func (s *Snapshot) Tap(b Button) {
	if b >= ButtonCount {
		return
	}
	s.Buttons[b].Down = true
	s.Buttons[b].WasDown = false
	s.Buttons[b].pulse = true
}

// Button returns the state of b.
func (s *Snapshot) Button(b Button) ButtonState {
	if b >= ButtonCount {
		return ButtonState{}
	}
	return s.Buttons[b]
}
