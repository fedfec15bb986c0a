package timbre

import "math/rand"

// Disrupt perturbs the channel's cepstral features with zero-mean Gaussian
// noise scaled by amount, and blends the lossy reconstruction of the
// perturbed features back into the signal. The blend is deliberately faint
// (amount * 0.1) because the inversion path is approximate. On strongly
// tonal content the reconstruction can overshoot the source amplitude by
// more than an order of magnitude: the 20-coefficient cepstral envelope
// rings around spectral peaks and the ringing is exponentiated out of the
// dB domain, so even the faint blend can leave an audible trace at the
// highest disruption settings. Degenerate input or a failed reconstruction
// returns the channel unchanged.
func Disrupt(samples []float64, sampleRate int, amount float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	if len(samples) == 0 || amount <= 0 {
		return out
	}

	ext := NewExtractor(sampleRate)
	mfcc := ext.MFCC(samples)
	if len(mfcc[0]) == 0 {
		return out
	}
	for k := range mfcc {
		for t := range mfcc[k] {
			mfcc[k][t] += rng.NormFloat64() * amount
		}
	}

	recon, ok := ext.Invert(mfcc, len(samples))
	if !ok {
		return out
	}

	blend := amount * 0.1
	for i := range out {
		out[i] = samples[i]*(1-blend) + recon[i]*blend
	}
	return out
}
