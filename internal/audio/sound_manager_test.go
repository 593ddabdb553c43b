package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

const testRate = beep.SampleRate(44100)

// drain reads a streamer to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ at sample %d: %v", total, smp)
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
		if total > testRate.N(5*time.Second) {
			t.Fatal("streamer never ended")
		}
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name     string
		event    asteroids.Event
		expected Sound
	}{
		{"fire", asteroids.BulletFiredEvent{}, SoundLaser},
		{"small", asteroids.AsteroidDestroyedEvent{Size: asteroids.Small}, SoundExplosionSmall},
		{"medium", asteroids.AsteroidDestroyedEvent{Size: asteroids.Medium}, SoundExplosionMedium},
		{"large", asteroids.AsteroidDestroyedEvent{Size: asteroids.Large}, SoundExplosionLarge},
		{"hit", asteroids.ShipHitEvent{Damage: 15, Health: 85}, SoundShipHit},
		{"destroyed", asteroids.ShipDestroyedEvent{}, SoundShipDestroyed},
		{"score", asteroids.ScoreEvent{Amount: 1}, SoundNone},
		{"explosion", asteroids.ExplosionEvent{Position: core.Point{1, 2}}, SoundNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SoundFor(tc.event); got != tc.expected {
				t.Errorf("SoundFor(%T) = %s, expected %s", tc.event, got, tc.expected)
			}
		})
	}
}

func TestSoundsDedupAndCap(t *testing.T) {
	events := []asteroids.Event{
		asteroids.BulletFiredEvent{},
		asteroids.ScoreEvent{Amount: 1},
		asteroids.AsteroidDestroyedEvent{Size: asteroids.Small},
		asteroids.AsteroidDestroyedEvent{Size: asteroids.Small},
		asteroids.BulletFiredEvent{},
	}
	got := Sounds(events)
	if len(got) != 2 || got[0] != SoundLaser || got[1] != SoundExplosionSmall {
		t.Errorf("Sounds() = %v, expected [laser explosion-small]", got)
	}

	many := []asteroids.Event{
		asteroids.BulletFiredEvent{},
		asteroids.AsteroidDestroyedEvent{Size: asteroids.Small},
		asteroids.AsteroidDestroyedEvent{Size: asteroids.Medium},
		asteroids.AsteroidDestroyedEvent{Size: asteroids.Large},
		asteroids.ShipHitEvent{},
		asteroids.ShipDestroyedEvent{},
	}
	if got := Sounds(many); len(got) != maxSoundsPerStep {
		t.Errorf("len(Sounds()) = %d, expected cap %d", len(got), maxSoundsPerStep)
	}

	if got := Sounds(nil); len(got) != 0 {
		t.Errorf("Sounds(nil) = %v, expected none", got)
	}
}

func TestStreamerLengthsAndAmplitude(t *testing.T) {
	tests := []struct {
		sound    Sound
		duration time.Duration
	}{
		{SoundLaser, laserDuration},
		{SoundExplosionSmall, 180 * time.Millisecond},
		{SoundExplosionMedium, 260 * time.Millisecond},
		{SoundExplosionLarge, 380 * time.Millisecond},
		{SoundShipHit, 150 * time.Millisecond},
		{SoundShipDestroyed, 900 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			st := Streamer(tc.sound, testRate)
			if st == nil {
				t.Fatal("Streamer() = nil")
			}
			n, peak := drain(t, st)
			if expected := testRate.N(tc.duration); n != expected {
				t.Errorf("sample count = %d, expected %d", n, expected)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak amplitude = %f, expected within (0, 1]", peak)
			}
		})
	}

	if Streamer(SoundNone, testRate) != nil {
		t.Error("Streamer(SoundNone) should be nil")
	}
}

func TestLargerExplosionsRingLonger(t *testing.T) {
	tail := func(s Sound) float64 {
		st := Streamer(s, testRate)
		buf := make([][2]float64, testRate.N(150*time.Millisecond))
		st.Stream(buf)
		n, _ := st.Stream(buf[:testRate.N(20*time.Millisecond)])
		energy := 0.0
		for _, smp := range buf[:n] {
			energy += smp[0] * smp[0]
		}
		return energy
	}

	small, large := tail(SoundExplosionSmall), tail(SoundExplosionLarge)
	if large <= small {
		t.Errorf("tail energy large = %f, expected more than small = %f", large, small)
	}
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundLaser)
	sm.Handle([]asteroids.Event{asteroids.ShipDestroyedEvent{}})
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Muted() = false after SetMuted(true)")
	}
	sm.Cleanup()
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// no audio device in most CI environments
	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed (expected without a device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize() = %v, expected no-op", err)
	}
	sm.Play(SoundLaser)
	sm.Cleanup()
	sm.Play(SoundLaser)
}
