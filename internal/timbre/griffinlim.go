package timbre

import (
	"math"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
)

const griffinLimIters = 32

// griffinLim estimates a length-n waveform from a magnitude-only
// spectrogram ([frames][bins]) by alternating synthesis and re-analysis,
// keeping the target magnitudes and the current phase estimate. ok is false
// when the spectrogram carries no energy or the iteration diverges.
func griffinLim(stft *dsp.STFT, mag [][]float64, n, iters int) ([]float64, bool) {
	var energy float64
	for _, row := range mag {
		for _, m := range row {
			if math.IsNaN(m) || math.IsInf(m, 0) {
				return nil, false
			}
			energy += m * m
		}
	}
	if len(mag) == 0 || energy == 0 {
		return nil, false
	}

	// Zero initial phase.
	spec := make([][]complex128, len(mag))
	for t, row := range mag {
		spec[t] = make([]complex128, len(row))
		for b, m := range row {
			spec[t][b] = complex(m, 0)
		}
	}

	x := stft.Synthesize(spec, n)
	for range iters {
		est := stft.Analyze(x)
		frames := len(est)
		if frames > len(mag) {
			frames = len(mag)
		}
		for t := range frames {
			for b := range spec[t] {
				c := est[t][b]
				r := math.Hypot(real(c), imag(c))
				if r > 1e-12 {
					spec[t][b] = complex(mag[t][b]/r, 0) * c
				} else {
					spec[t][b] = complex(mag[t][b], 0)
				}
			}
		}
		x = stft.Synthesize(spec, n)
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
	}
	return x, true
}
