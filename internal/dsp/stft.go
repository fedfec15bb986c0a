// Package dsp holds the shared numeric primitives of the pipeline: the
// short-time Fourier transform, Butterworth band-pass filtering, and linear
// interpolation over non-uniform sample positions.
package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// STFT computes short-time Fourier analysis and overlap-add synthesis with a
// Hann window. Frames start at multiples of HopLen and are zero-padded past
// the end of the input, so every input sample is covered by some frame.
type STFT struct {
	FrameLen int
	HopLen   int

	fft    *fourier.FFT
	window []float64
}

func NewSTFT(frameLen, hopLen int) *STFT {
	return &STFT{
		FrameLen: frameLen,
		HopLen:   hopLen,
		fft:      fourier.NewFFT(frameLen),
		window:   hannWindow(frameLen),
	}
}

// Bins returns the number of frequency bins per frame.
func (s *STFT) Bins() int {
	return s.FrameLen/2 + 1
}

// NumFrames returns the number of analysis frames covering n samples.
func (s *STFT) NumFrames(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + s.HopLen - 1) / s.HopLen
}

// Analyze returns the complex spectrogram, one row of Bins() coefficients
// per frame.
func (s *STFT) Analyze(samples []float64) [][]complex128 {
	frames := s.NumFrames(len(samples))
	spec := make([][]complex128, frames)
	buf := make([]float64, s.FrameLen)
	for f := range frames {
		start := f * s.HopLen
		for i := range buf {
			if start+i < len(samples) {
				buf[i] = samples[start+i] * s.window[i]
			} else {
				buf[i] = 0
			}
		}
		spec[f] = s.fft.Coefficients(nil, buf)
	}
	return spec
}

// Magnitude returns |spec| with the same frame-major layout.
func Magnitude(spec [][]complex128) [][]float64 {
	mag := make([][]float64, len(spec))
	for f, row := range spec {
		mag[f] = make([]float64, len(row))
		for i, c := range row {
			mag[f][i] = cmplx.Abs(c)
		}
	}
	return mag
}

// Synthesize reconstructs a waveform of length n from a complex spectrogram
// by windowed overlap-add with squared-window normalization. Samples whose
// accumulated window weight is negligible (the first few of the signal,
// where the Hann window is near zero) are left at zero rather than divided
// by a vanishing weight.
func (s *STFT) Synthesize(spec [][]complex128, n int) []float64 {
	if len(spec) == 0 || n <= 0 {
		return make([]float64, max(n, 0))
	}
	full := (len(spec)-1)*s.HopLen + s.FrameLen
	acc := make([]float64, full)
	wsum := make([]float64, full)
	seq := make([]float64, s.FrameLen)
	scale := 1 / float64(s.FrameLen)
	for f, row := range spec {
		start := f * s.HopLen
		s.fft.Sequence(seq, row)
		for i, v := range seq {
			acc[start+i] += v * scale * s.window[i]
			wsum[start+i] += s.window[i] * s.window[i]
		}
	}
	out := make([]float64, n)
	for i := range out {
		if i < full && wsum[i] > 1e-8 {
			out[i] = acc[i] / wsum[i]
		}
	}
	return out
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
