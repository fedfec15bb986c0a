// Package detect implements the verification heuristics: ultrasonic band
// energy, beat-interval variance, and cepstral variance. The scores mirror
// the embedding stages statistically; none of them decodes the embedded
// payload.
package detect

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/dsp"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/timbre"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/ultrasonic"
)

// highCoeffStart is the first cepstral coefficient counted as high-order.
const highCoeffStart = 10

// UltrasonicScore is the mean absolute amplitude inside the ultrasonic
// band. Sample rates too low to resolve the band's upper edge score 0.
func UltrasonicScore(samples []float64, sampleRate int) float64 {
	if sampleRate <= 0 || float64(sampleRate) < 2*ultrasonic.BandHigh {
		return 0
	}
	filtered, ok := dsp.BandPass(samples, ultrasonic.BandLow, ultrasonic.BandHigh, sampleRate)
	if !ok || len(filtered) == 0 {
		return 0
	}
	var sum float64
	for _, v := range filtered {
		sum += math.Abs(v)
	}
	return sum / float64(len(filtered))
}

// TemporalScore measures beat-interval irregularity: the population
// variance of inter-beat intervals normalized by their mean, clipped to 1.
// Fewer than 3 estimated beats, or any degenerate estimate, scores 0.
func TemporalScore(samples []float64, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	beats := estimateBeats(samples, sampleRate)
	if len(beats) < 3 {
		return 0
	}
	intervals := make([]float64, len(beats)-1)
	for i := range intervals {
		intervals[i] = float64(beats[i+1] - beats[i])
	}
	mean := stat.Mean(intervals, nil)
	if mean <= 0 {
		return 0
	}
	var ss float64
	for _, v := range intervals {
		d := v - mean
		ss += d * d
	}
	variance := ss / float64(len(intervals))
	score := variance / mean
	if score > 1 {
		score = 1
	}
	return score
}

// TimbreScore averages the per-coefficient variance of the high-order
// cepstral coefficients, scaled down by a fixed constant and clipped to
// [0, 1]. Elevated variance there is the footprint of cepstral disruption.
func TimbreScore(samples []float64, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	mfcc := timbre.NewExtractor(sampleRate).MFCC(samples)
	if len(mfcc) == 0 || len(mfcc[0]) == 0 {
		return 0
	}
	var sum float64
	var count int
	for k := highCoeffStart; k < len(mfcc); k++ {
		mean := stat.Mean(mfcc[k], nil)
		var ss float64
		for _, v := range mfcc[k] {
			d := v - mean
			ss += d * d
		}
		sum += ss / float64(len(mfcc[k]))
		count++
	}
	if count == 0 {
		return 0
	}
	score := sum / float64(count) / 100
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
