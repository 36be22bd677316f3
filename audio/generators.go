package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Envelope scales a streamer with a short attack and linear release to avoid clicks
type Envelope struct {
	src    beep.Streamer
	attack int
	total  int
	pos    int
	gain   float64
}

// NewEnvelope wraps src for a cue lasting d
func NewEnvelope(src beep.Streamer, sr beep.SampleRate, d time.Duration) *Envelope {
	return &Envelope{
		src:    src,
		attack: sr.N(5 * time.Millisecond),
		total:  max(sr.N(d), 1),
		gain:   0.25,
	}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		level := 1.0
		if e.pos < e.attack {
			level = float64(e.pos) / float64(e.attack)
		}
		if release := 1.0 - float64(e.pos)/float64(e.total); release < level {
			level = math.Max(release, 0)
		}
		samples[i][0] *= level * e.gain
		samples[i][1] *= level * e.gain
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.src.Err()
}

// FallGenerator sweeps from 440Hz down to 110Hz with an exponential decay
type FallGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
}

// NewFallGenerator creates a game-over sweep lasting d
func NewFallGenerator(sr beep.SampleRate, d time.Duration) *FallGenerator {
	return &FallGenerator{sr: sr, total: max(sr.N(d), 1)}
}

func (g *FallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := 440 * math.Pow(0.25, progress)

		// Integrate phase so the sweep stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Exp(-progress * 3)
		sample := 0.3 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FallGenerator) Err() error {
	return nil
}
