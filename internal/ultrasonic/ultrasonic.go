// Package ultrasonic injects a fixed multi-tone pattern above the audible
// range. The stage ignores the masking envelope by design: its target band
// is inaudible regardless of local energy.
package ultrasonic

import (
	"math"
	"math/rand"
)

// Pattern band and tone count.
const (
	BandLow  = 16000.0
	BandHigh = 20000.0
	NumTones = 10
)

// Inject adds the normalized tone pattern, scaled by strength * 0.5, to the
// channel. Tone frequencies are evenly spaced across the band; any tone at
// or above the Nyquist limit is skipped, so the pattern never aliases.
// Phases come from the caller-owned generator.
func Inject(samples []float64, sampleRate int, strength float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	if len(samples) == 0 {
		return out
	}

	nyquist := float64(sampleRate) / 2
	pattern := make([]float64, len(samples))
	injected := false
	for i := range NumTones {
		freq := BandLow + (BandHigh-BandLow)*float64(i)/float64(NumTones-1)
		if freq >= nyquist {
			continue
		}
		injected = true
		phase := rng.Float64() * 2 * math.Pi
		omega := 2 * math.Pi * freq / float64(sampleRate)
		for j := range pattern {
			pattern[j] += math.Sin(omega*float64(j) + phase)
		}
	}
	if !injected {
		return out
	}

	var peak float64
	for _, v := range pattern {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return out
	}
	scale := strength * 0.5 / peak
	for i := range out {
		out[i] += pattern[i] * scale
	}
	return out
}
