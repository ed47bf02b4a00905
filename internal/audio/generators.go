package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine tone with an exponential decay envelope.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64 // envelope rate per second
	pos   int
}

func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error { return nil }

// SweepGenerator glides linearly from one frequency to another over one
// second, fading out as it goes.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.from + (g.to-g.from)*math.Min(t, 1)
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.2 * math.Max(1-t, 0) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }

// CrackGenerator is decaying noise over a low rumble.
type CrackGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewCrackGenerator(sr beep.SampleRate, seed int64) *CrackGenerator {
	return &CrackGenerator{sr: sr, seed: seed}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*90*t)
		sample := math.Exp(-t*20) * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error { return nil }
