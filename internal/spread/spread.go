// Package spread embeds the signature payload as a spread-spectrum
// watermark: a seeded wideband Gaussian carrier modulated by the payload
// bits, bounded by the masking envelope, and shaped into the profile's
// frequency bands.
package spread

import (
	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/seed"
)

// Params carries the profile settings the embedder needs.
type Params struct {
	// Strength scales the modulated carrier before masking.
	Strength float64
	// Bands are the (low, high) target bands in Hz. Overlapping bands
	// accumulate additively.
	Bands [][2]float64
	// Rate scales each band-filtered replica.
	Rate float64
}

// Embed returns samples plus the band-shaped watermark. bits are payload
// amplitudes in {-1, +1}; carrierSeed determines the pseudo-random carrier;
// envelope is the per-sample masking gain and must match len(samples).
func Embed(samples []float64, bits []float64, carrierSeed uint32, envelope []float64, sampleRate int, p Params) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	if len(samples) == 0 || len(bits) == 0 {
		return out
	}

	rng := seed.NewRand(carrierSeed)
	carrier := make([]float64, len(samples))
	for i := range carrier {
		carrier[i] = rng.NormFloat64()
	}

	// One slot per payload bit; the remainder after equal division belongs
	// to the last slot.
	wm := make([]float64, len(samples))
	slot := len(samples) / len(bits)
	for i, bit := range bits {
		start := i * slot
		end := start + slot
		if i == len(bits)-1 {
			end = len(samples)
		}
		for j := start; j < end && j < len(samples); j++ {
			wm[j] = carrier[j] * bit * p.Strength
		}
	}
	for i := range wm {
		wm[i] *= envelope[i]
	}

	for _, band := range p.Bands {
		filtered, ok := dsp.BandPass(wm, band[0], band[1], sampleRate)
		if !ok {
			// Band collapses below this sample rate; it contributes nothing.
			continue
		}
		for i := range out {
			out[i] += filtered[i] * p.Rate
		}
	}
	return out
}
