package dsp

import (
	"math"
	"math/cmplx"
)

// bandPassOrder is the Butterworth prototype order used throughout the
// pipeline for confining watermark energy to a band.
const bandPassOrder = 4

type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// BandPass filters samples through a 4th-order Butterworth band-pass with
// the given edges in Hz. Edges are clamped inside (0, Nyquist); if the band
// collapses after clamping, ok is false and no output is produced.
func BandPass(samples []float64, low, high float64, sampleRate int) ([]float64, bool) {
	sections, ok := designBandPass(bandPassOrder, low, high, float64(sampleRate))
	if !ok {
		return nil, false
	}
	out := make([]float64, len(samples))
	copy(out, samples)
	for _, sec := range sections {
		var z1, z2 float64
		for i, x := range out {
			y := sec.b0*x + z1
			z1 = sec.b1*x - sec.a1*y + z2
			z2 = sec.b2*x - sec.a2*y
			out[i] = y
		}
	}
	return out, true
}

// designBandPass builds second-order sections for an order-n Butterworth
// band-pass: analog low-pass prototype poles, low-pass to band-pass
// transform, bilinear mapping, then unity gain at the band center.
func designBandPass(order int, low, high, fs float64) ([]biquad, bool) {
	nyq := fs / 2
	if low <= 0 {
		low = 1
	}
	if high >= nyq {
		high = nyq * 0.999
	}
	if low >= high {
		return nil, false
	}

	// Prewarped analog edge frequencies.
	fs2 := 2 * fs
	w1 := fs2 * math.Tan(math.Pi*low/fs)
	w2 := fs2 * math.Tan(math.Pi*high/fs)
	w0 := math.Sqrt(w1 * w2)
	bw := w2 - w1

	sections := make([]biquad, 0, order)
	for k := range order / 2 {
		// Upper-half-plane prototype pole; its conjugate is implicit in
		// the real second-order coefficients below.
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		p := cmplx.Exp(complex(0, theta))

		a := p * complex(bw/2, 0)
		d := cmplx.Sqrt(a*a - complex(w0*w0, 0))
		for _, sp := range []complex128{a + d, a - d} {
			// Bilinear transform to the z-plane.
			z := (complex(fs2, 0) + sp) / (complex(fs2, 0) - sp)
			sections = append(sections, biquad{
				b0: 1, b1: 0, b2: -1,
				a1: -2 * real(z),
				a2: real(z)*real(z) + imag(z)*imag(z),
			})
		}
	}

	// Normalize to unity gain at the geometric band center.
	wc := 2 * math.Pi * math.Sqrt(low*high) / fs
	z0 := cmplx.Exp(complex(0, wc))
	h := complex(1, 0)
	for _, sec := range sections {
		num := z0*z0 + complex(sec.b1, 0)*z0 + complex(sec.b2, 0)
		den := z0*z0 + complex(sec.a1, 0)*z0 + complex(sec.a2, 0)
		h *= num / den
	}
	gain := cmplx.Abs(h)
	if gain == 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return nil, false
	}
	k := 1 / gain
	sections[0].b0 *= k
	sections[0].b2 *= k
	return sections, true
}
