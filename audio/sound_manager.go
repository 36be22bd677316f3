package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue frequencies and lengths
const (
	hitFreq           = 880.0
	hitDuration       = 50 * time.Millisecond
	countdownFreq     = 440.0
	countdownDuration = 80 * time.Millisecond
	gameOverDuration  = 300 * time.Millisecond
)

// SoundManager plays the game's short cues through one shared mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; the game runs silently when this fails
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayHit plays the paddle hit blip
func (sm *SoundManager) PlayHit() {
	sm.playTone(hitFreq, hitDuration)
}

// PlayCountdown plays the countdown tick
func (sm *SoundManager) PlayCountdown() {
	sm.playTone(countdownFreq, countdownDuration)
}

// PlayGameOver plays the falling game-over sweep
func (sm *SoundManager) PlayGameOver() {
	sm.add(beep.Take(sampleRate.N(gameOverDuration), NewFallGenerator(sampleRate, gameOverDuration)))
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("[audio] tone %.0fHz: %v", freq, err)
		return
	}
	sm.add(beep.Take(sampleRate.N(d), NewEnvelope(sine, sampleRate, d)))
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
