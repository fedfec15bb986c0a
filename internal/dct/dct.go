package dct

import "math"

// DCT computes the orthonormal type-II discrete cosine transform over
// vectors of length n, with precomputed basis functions.
type DCT struct {
	n   int
	phi []float64
}

func New(n int) *DCT {
	d := &DCT{n: n}
	nf := float64(n)

	d.phi = make([]float64, n*n)
	for j := range n {
		// k = 0
		d.phi[j] = 1.0 / math.Sqrt(nf)
	}
	for k := 1; k < n; k++ {
		for j := range n {
			d.phi[k*n+j] = math.Sqrt(2.0/nf) *
				math.Cos(
					(float64(k)*math.Pi*(float64(j)*2+1))/
						(2.0*nf),
				)
		}
	}
	return d
}

// Forward fills dst with the first len(dst) DCT coefficients of src.
// src must have length n; len(dst) may be at most n.
func (d *DCT) Forward(dst, src []float64) {
	for k := range dst {
		sum := 0.0
		for j, v := range src {
			sum += d.phi[k*d.n+j] * v
		}
		dst[k] = sum
	}
}

// Inverse fills dst (length n) with the signal reconstructed from the
// leading len(src) coefficients. With fewer coefficients than n the result
// is the coarse low-order reconstruction.
func (d *DCT) Inverse(dst, src []float64) {
	for j := range dst {
		sum := 0.0
		for k, v := range src {
			sum += d.phi[k*d.n+j] * v
		}
		dst[j] = sum
	}
}
