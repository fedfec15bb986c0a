// Package masking estimates a per-sample gain envelope bounding how much
// watermark energy can be added without audible artifacts. It is a coarse
// energy-based approximation, not a full psychoacoustic model.
package masking

import (
	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
)

const (
	// Floor keeps the watermark from being fully suppressed in quiet spans.
	Floor = 0.1
	// Ceiling keeps the watermark from exceeding its unmasked level.
	Ceiling = 1.0
)

// Envelope returns one gain value per input sample. Each analysis frame's
// mean magnitude, normalized by the global maximum magnitude, is clipped to
// [Floor, Ceiling] and broadcast across the frame's hop span; the final
// partial span is clipped to the remaining length.
func Envelope(samples []float64, frameLen int) []float64 {
	hop := frameLen / 4
	env := make([]float64, len(samples))
	for i := range env {
		env[i] = Floor
	}
	if len(samples) == 0 {
		return env
	}

	mag := dsp.Magnitude(dsp.NewSTFT(frameLen, hop).Analyze(samples))

	var globalMax float64
	for _, frame := range mag {
		for _, m := range frame {
			if m > globalMax {
				globalMax = m
			}
		}
	}
	if globalMax == 0 {
		// Silent input: the floor applies everywhere.
		return env
	}

	for f, frame := range mag {
		var sum float64
		for _, m := range frame {
			sum += m
		}
		g := sum / float64(len(frame)) / globalMax
		if g < Floor {
			g = Floor
		}
		if g > Ceiling {
			g = Ceiling
		}
		start := f * hop
		end := start + hop
		if end > len(samples) {
			end = len(samples)
		}
		for i := start; i < end; i++ {
			env[i] = g
		}
	}
	return env
}
