package timbre

import "math"

// Slaney-style mel scale: linear below 1 kHz, logarithmic above.
const (
	melLinearStep = 200.0 / 3.0
	melBreakHz    = 1000.0
	melBreak      = melBreakHz / melLinearStep
)

var melLogStep = math.Log(6.4) / 27.0

func hzToMel(f float64) float64 {
	if f < melBreakHz {
		return f / melLinearStep
	}
	return melBreak + math.Log(f/melBreakHz)/melLogStep
}

func melToHz(m float64) float64 {
	if m < melBreak {
		return m * melLinearStep
	}
	return melBreakHz * math.Exp(melLogStep*(m-melBreak))
}

// melBank builds a triangular mel filterbank of nMels filters over the
// frameLen-point spectrum, area-normalized per filter.
func melBank(nMels, frameLen, sampleRate int) [][]float64 {
	bins := frameLen/2 + 1
	fmax := float64(sampleRate) / 2

	// nMels+2 edge frequencies, evenly spaced on the mel scale.
	edges := make([]float64, nMels+2)
	maxMel := hzToMel(fmax)
	for i := range edges {
		edges[i] = melToHz(maxMel * float64(i) / float64(nMels+1))
	}

	bank := make([][]float64, nMels)
	for m := range bank {
		bank[m] = make([]float64, bins)
		lo, center, hi := edges[m], edges[m+1], edges[m+2]
		enorm := 2.0 / (hi - lo)
		for b := range bins {
			f := float64(b) * float64(sampleRate) / float64(frameLen)
			var w float64
			switch {
			case f <= lo || f >= hi:
				w = 0
			case f <= center:
				w = (f - lo) / (center - lo)
			default:
				w = (hi - f) / (hi - center)
			}
			bank[m][b] = w * enorm
		}
	}
	return bank
}
