// Package audio plays short synthesized effects for simulation events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

const (
	sampleRate            = beep.SampleRate(48000)
	speakerBufferDuration = 100 * time.Millisecond

	// Effects beyond this many per step are dropped.
	maxSoundsPerStep = 4
)

// Sound identifies one synthesized effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundLaser
	SoundExplosionSmall
	SoundExplosionMedium
	SoundExplosionLarge
	SoundShipHit
	SoundShipDestroyed
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosionSmall:
		return "explosion-small"
	case SoundExplosionMedium:
		return "explosion-medium"
	case SoundExplosionLarge:
		return "explosion-large"
	case SoundShipHit:
		return "ship-hit"
	case SoundShipDestroyed:
		return "ship-destroyed"
	default:
		return "none"
	}
}

// SoundFor maps a simulation event to its effect.
// Score and explosion events are silent; the destruction events carry the sound.
func SoundFor(e asteroids.Event) Sound {
	switch ev := e.(type) {
	case asteroids.BulletFiredEvent:
		return SoundLaser
	case asteroids.AsteroidDestroyedEvent:
		switch ev.Size {
		case asteroids.Large:
			return SoundExplosionLarge
		case asteroids.Medium:
			return SoundExplosionMedium
		default:
			return SoundExplosionSmall
		}
	case asteroids.ShipHitEvent:
		return SoundShipHit
	case asteroids.ShipDestroyedEvent:
		return SoundShipDestroyed
	default:
		return SoundNone
	}
}

// Streamer builds a finite streamer for the sound at the given rate.
// SoundNone yields nil.
func Streamer(s Sound, sr beep.SampleRate) beep.Streamer {
	switch s {
	case SoundLaser:
		return beep.Take(sr.N(laserDuration), NewLaserGenerator(sr))
	case SoundExplosionSmall:
		return beep.Take(sr.N(180*time.Millisecond), NewBlastGenerator(sr, 14, 140))
	case SoundExplosionMedium:
		return beep.Take(sr.N(260*time.Millisecond), NewBlastGenerator(sr, 10, 95))
	case SoundExplosionLarge:
		return beep.Take(sr.N(380*time.Millisecond), NewBlastGenerator(sr, 7, 60))
	case SoundShipHit:
		return beep.Take(sr.N(150*time.Millisecond), NewBuzzGenerator(sr, 120))
	case SoundShipDestroyed:
		return beep.Take(sr.N(900*time.Millisecond), NewBlastGenerator(sr, 3, 45))
	default:
		return nil
	}
}

// SoundManager owns the speaker and mixes effects.
// All methods are no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device. A second call is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted silences or restores effects.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether effects are silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues one effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	st := Streamer(s, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Handle plays the effects for one step's events.
func (sm *SoundManager) Handle(events []asteroids.Event) {
	for _, s := range Sounds(events) {
		sm.Play(s)
	}
}

// Sounds returns the effects for a batch of events, without duplicates
// and capped at maxSoundsPerStep.
func Sounds(events []asteroids.Event) []Sound {
	var out []Sound
	seen := make(map[Sound]bool)
	for _, e := range events {
		s := SoundFor(e)
		if s == SoundNone || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == maxSoundsPerStep {
			break
		}
	}
	return out
}

// Cleanup stops all sounds
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
