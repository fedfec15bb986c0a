// Package jitter applies a bounded, content-seeded time warp. The warp is a
// per-sample random walk of at most a few milliseconds, enough to disturb
// rhythm-pattern learning while staying below audibility.
package jitter

import (
	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/seed"
)

// seedPrefix is the number of leading samples hashed into the jitter seed,
// making the warp reproducible for identical audio content.
const seedPrefix = 100

// Apply returns the time-warped channel. Output length equals input length;
// a jitter bound that rounds to zero samples leaves the signal unchanged.
func Apply(samples []float64, sampleRate int, jitterMS float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)

	maxOffset := int(jitterMS / 1000.0 * float64(sampleRate))
	if maxOffset <= 0 || len(samples) < 2 {
		return out
	}

	rng := seed.NewRand(seed.FromSamples(samples, seedPrefix))

	// Cumulative random walk of uniform steps in [-maxOffset, +maxOffset],
	// shifted so the first offset is zero.
	walk := make([]float64, len(samples))
	var cum int
	for i := range walk {
		cum += rng.Intn(2*maxOffset+1) - maxOffset
		walk[i] = float64(cum)
	}
	first := walk[0]

	limit := float64(len(samples) - 1)
	warped := make([]float64, len(samples))
	uniform := make([]float64, len(samples))
	for i := range warped {
		w := float64(i) + walk[i] - first
		if w < 0 {
			w = 0
		}
		if w > limit {
			w = limit
		}
		warped[i] = w
		uniform[i] = float64(i)
	}

	// Local non-monotonicity near the clip boundaries is accepted as
	// negligible given the small jitter bound.
	return dsp.Interp(uniform, warped, samples)
}
