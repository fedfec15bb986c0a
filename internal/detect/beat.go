package detect

import (
	"math"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
)

const (
	beatFrameLen = 2048
	beatHopLen   = 512
)

// estimateBeats returns beat positions as analysis-frame indices, found by
// peak-picking the spectral-flux onset envelope. Inputs too short or too
// flat to produce peaks return no beats; callers treat that as a zero
// temporal score rather than a failure.
func estimateBeats(samples []float64, sampleRate int) []int {
	mag := dsp.Magnitude(dsp.NewSTFT(beatFrameLen, beatHopLen).Analyze(samples))
	if len(mag) < 3 {
		return nil
	}

	// Onset strength: positive spectral flux between adjacent frames.
	flux := make([]float64, len(mag))
	for t := 1; t < len(mag); t++ {
		var sum float64
		for b := range mag[t] {
			if d := mag[t][b] - mag[t-1][b]; d > 0 {
				sum += d
			}
		}
		flux[t] = sum
	}

	var mean float64
	for _, v := range flux {
		mean += v
	}
	mean /= float64(len(flux))
	var ss float64
	for _, v := range flux {
		d := v - mean
		ss += d * d
	}
	threshold := mean + math.Sqrt(ss/float64(len(flux)))

	var beats []int
	for t := 1; t < len(flux)-1; t++ {
		if flux[t] > threshold && flux[t] > flux[t-1] && flux[t] >= flux[t+1] {
			beats = append(beats, t)
		}
	}
	return beats
}
