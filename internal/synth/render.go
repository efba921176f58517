// Package synth renders tone schedules to PCM and plays them.
package synth

import (
	"fmt"
	"math"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/patrickmn/go-cache"

	"github.com/abhisek/tonequiz/internal/tones"
)

const (
	DefaultSampleRate = 44100
	DefaultVolume     = 0.3

	// releaseRatio is the gain at the end of a tone relative to its start.
	// Each tone decays exponentially from Volume to Volume*releaseRatio.
	releaseRatio = 0.01 / 0.3

	toneCacheTTL = 10 * time.Minute
)

// Renderer turns tone schedules into mono float samples in [-1, 1].
// Individual tones are cached; the same few frequencies repeat constantly.
type Renderer struct {
	SampleRate int
	Volume     float64
	tones      *cache.Cache
}

// NewRenderer creates a renderer. Non-positive arguments select defaults.
func NewRenderer(sampleRate int, volume float64) *Renderer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if volume <= 0 {
		volume = DefaultVolume
	}
	if volume > 1 {
		volume = 1
	}
	return &Renderer{
		SampleRate: sampleRate,
		Volume:     volume,
		tones:      cache.New(toneCacheTTL, 2*toneCacheTTL),
	}
}

// samples converts a duration to a sample count at the renderer's rate.
func (r *Renderer) samples(d time.Duration) int {
	return int(d.Seconds() * float64(r.SampleRate))
}

// Render mixes every instruction of seq into a single buffer spanning
// tones.End(seq). Gaps between tones are silence; overlapping tones add.
func (r *Renderer) Render(seq []tones.Instruction) []float64 {
	out := make([]float64, r.samples(tones.End(seq)))
	for _, in := range seq {
		tone := r.tone(in.Frequency, in.Duration)
		start := r.samples(in.Start)
		if start >= len(out) {
			continue
		}
		end := min(start+len(tone), len(out))
		vecmath.AddBlockInPlace(out[start:end], tone[:end-start])
	}
	for i, v := range out {
		out[i] = math.Max(-1, math.Min(1, v))
	}
	return out
}

// tone returns the enveloped sine for (hz, d). The returned slice is shared
// through the cache and must not be modified.
func (r *Renderer) tone(hz float64, d time.Duration) []float64 {
	key := fmt.Sprintf("%.3f/%d", hz, d.Microseconds())
	if v, ok := r.tones.Get(key); ok {
		return v.([]float64)
	}

	n := r.samples(d)
	wave := make([]float64, n)
	step := 2 * math.Pi * hz / float64(r.SampleRate)
	for i := range wave {
		wave[i] = math.Sin(step * float64(i))
	}
	vecmath.MulBlockInPlace(wave, r.envelope(n))

	r.tones.Set(key, wave, cache.DefaultExpiration)
	return wave
}

// envelope is an exponential decay from Volume to Volume*releaseRatio.
func (r *Renderer) envelope(n int) []float64 {
	env := make([]float64, n)
	if n == 0 {
		return env
	}
	for i := range env {
		env[i] = math.Pow(releaseRatio, float64(i)/float64(n))
	}
	scaled := make([]float64, n)
	vecmath.ScaleBlock(scaled, env, r.Volume)
	return scaled
}
