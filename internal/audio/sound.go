// Package audio plays short synthesized effects for collisions.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker mixer. Every Play method is a no-op until
// Initialize succeeds, and while muted.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. It may only succeed once per process.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every playing sound and silences the manager.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences or restores effects. Sounds already playing finish.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayBounce is the wall tick.
func (sm *SoundManager) PlayBounce() {
	sm.play(40*time.Millisecond, NewToneGenerator(sampleRate, 660, 60))
}

// PlayPaddle is the paddle thock.
func (sm *SoundManager) PlayPaddle() {
	sm.play(70*time.Millisecond, NewToneGenerator(sampleRate, 330, 40))
}

// PlayBlockHit is a block losing one of several lives.
func (sm *SoundManager) PlayBlockHit() {
	sm.play(60*time.Millisecond, NewToneGenerator(sampleRate, 880, 50))
}

// PlayBreak is a block shattering.
func (sm *SoundManager) PlayBreak() {
	sm.play(150*time.Millisecond, NewCrackGenerator(sampleRate, time.Now().UnixNano()))
}

// PlayLose is a ball dropping through the dead wall.
func (sm *SoundManager) PlayLose() {
	sm.play(400*time.Millisecond, NewSweepGenerator(sampleRate, 440, 110))
}

// PlayLevel is the short rising chirp on level load.
func (sm *SoundManager) PlayLevel() {
	sm.play(250*time.Millisecond, NewSweepGenerator(sampleRate, 300, 900))
}

func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}
