// Package timbre computes and perturbs cepstral features. The disruption
// stage adds seeded Gaussian noise to the feature matrix and blends a lossy
// reconstruction of the perturbed features back into the signal.
package timbre

import (
	"math"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/dct"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
)

const (
	// NumCoefficients is the fixed cepstral feature size.
	NumCoefficients = 20

	numMels  = 128
	frameLen = 2048
	hopLen   = 512

	// powerToDB parameters: amplitude floor and dynamic-range clamp.
	dbAmin  = 1e-10
	dbTopDB = 80.0
)

var dctCache = dct.NewCache()

// Extractor computes the fixed-size cepstral feature matrix of a channel.
type Extractor struct {
	sampleRate int
	stft       *dsp.STFT
	mel        [][]float64
	dct        *dct.DCT
}

func NewExtractor(sampleRate int) *Extractor {
	return &Extractor{
		sampleRate: sampleRate,
		stft:       dsp.NewSTFT(frameLen, hopLen),
		mel:        melBank(numMels, frameLen, sampleRate),
		dct:        dctCache.New(numMels),
	}
}

// MFCC returns the coefficient matrix, one row per coefficient and one
// column per analysis frame. Inputs shorter than a hop yield zero columns.
func (e *Extractor) MFCC(samples []float64) [][]float64 {
	spec := e.stft.Analyze(samples)
	frames := len(spec)
	out := make([][]float64, NumCoefficients)
	for k := range out {
		out[k] = make([]float64, frames)
	}
	if frames == 0 {
		return out
	}

	logmel := e.logMel(spec)

	col := make([]float64, numMels)
	coef := make([]float64, NumCoefficients)
	for t := range frames {
		for m := range col {
			col[m] = logmel[m][t]
		}
		e.dct.Forward(coef, col)
		for k := range coef {
			out[k][t] = coef[k]
		}
	}
	return out
}

// logMel converts a complex spectrogram to a log-power mel matrix
// ([numMels][frames]) with the dynamic range clamped to dbTopDB.
func (e *Extractor) logMel(spec [][]complex128) [][]float64 {
	frames := len(spec)
	bins := e.stft.Bins()

	power := make([][]float64, frames)
	for t, row := range spec {
		power[t] = make([]float64, bins)
		for b, c := range row {
			re, im := real(c), imag(c)
			power[t][b] = re*re + im*im
		}
	}

	logmel := make([][]float64, numMels)
	maxDB := math.Inf(-1)
	for m := range logmel {
		logmel[m] = make([]float64, frames)
		for t := range frames {
			var sum float64
			for b, w := range e.mel[m] {
				sum += w * power[t][b]
			}
			if sum < dbAmin {
				sum = dbAmin
			}
			db := 10 * math.Log10(sum)
			logmel[m][t] = db
			if db > maxDB {
				maxDB = db
			}
		}
	}
	floor := maxDB - dbTopDB
	for m := range logmel {
		for t := range logmel[m] {
			if logmel[m][t] < floor {
				logmel[m][t] = floor
			}
		}
	}
	return logmel
}

// Invert approximately reconstructs a waveform of length n from a (possibly
// perturbed) coefficient matrix: inverse DCT to a coarse log-mel envelope,
// dB to power, weighted-transpose projection back to a linear magnitude
// spectrogram, then iterative phase reconstruction. ok is false when the
// features are degenerate or reconstruction fails; callers must fall back
// to the unmodified channel.
func (e *Extractor) Invert(mfcc [][]float64, n int) ([]float64, bool) {
	if len(mfcc) == 0 || len(mfcc[0]) == 0 || n <= 0 {
		return nil, false
	}
	frames := len(mfcc[0])
	bins := e.stft.Bins()

	// Coefficients back to a log-mel envelope estimate.
	melPower := make([][]float64, numMels)
	for m := range melPower {
		melPower[m] = make([]float64, frames)
	}
	coef := make([]float64, len(mfcc))
	col := make([]float64, numMels)
	for t := range frames {
		for k := range mfcc {
			coef[k] = mfcc[k][t]
		}
		e.dct.Inverse(col, coef)
		for m, db := range col {
			melPower[m][t] = math.Pow(10, db/10)
		}
	}

	// Mel power to linear magnitude via normalized transpose weights.
	weight := make([]float64, bins)
	for m := range e.mel {
		for b, w := range e.mel[m] {
			weight[b] += w
		}
	}
	mag := make([][]float64, frames)
	for t := range frames {
		mag[t] = make([]float64, bins)
		for b := range mag[t] {
			if weight[b] < 1e-10 {
				continue
			}
			var sum float64
			for m := range e.mel {
				sum += e.mel[m][b] * melPower[m][t]
			}
			p := sum / weight[b]
			if p > 0 {
				mag[t][b] = math.Sqrt(p)
			}
		}
	}

	return griffinLim(e.stft, mag, n, griffinLimIters)
}
