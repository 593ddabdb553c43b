package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	laserDuration     = 90 * time.Millisecond
	laserFreqStartHz  = 1400.0
	laserFreqEndHz    = 300.0
	laserAmplitude    = 0.18
	blastNoiseAmp     = 0.25
	blastRumbleAmp    = 0.3
	buzzAmplitude     = 0.2
	buzzFadeInSeconds = 0.02
)

// LaserGenerator generates a falling pitch sweep
type LaserGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewLaserGenerator creates a laser sound generator
func NewLaserGenerator(sr beep.SampleRate) *LaserGenerator {
	return &LaserGenerator{
		sr:    sr,
		total: sr.N(laserDuration),
	}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := laserFreqStartHz + (laserFreqEndHz-laserFreqStartHz)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// square-ish tone, fading out
		sample := math.Sin(g.phase)
		if sample > 0 {
			sample = 0.6 + 0.4*sample
		} else {
			sample = -0.6 + 0.4*sample
		}
		sample *= laserAmplitude * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// BlastGenerator generates an explosion: noise over a low rumble with an
// exponential decay. Lower decay rates ring longer.
type BlastGenerator struct {
	sr     beep.SampleRate
	pos    int
	decay  float64
	rumble float64
	seed   int64
}

// NewBlastGenerator creates an explosion generator
func NewBlastGenerator(sr beep.SampleRate, decay, rumbleHz float64) *BlastGenerator {
	return &BlastGenerator{
		sr:     sr,
		decay:  decay,
		rumble: rumbleHz,
		seed:   int64(rumbleHz*1000) + 1,
	}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := blastRumbleAmp * math.Sin(2*math.Pi*g.rumble*t)
		sample := envelope * (blastNoiseAmp*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/buzzFadeInSeconds, 1.0)
		sample *= envelope * buzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
