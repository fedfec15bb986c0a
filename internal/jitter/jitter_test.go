package jitter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tone(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 44100)
	}
	return out
}

func TestApply(t *testing.T) {
	t.Run("length preserved", func(t *testing.T) {
		for _, n := range []int{2, 100, 44100} {
			out := Apply(tone(n), 44100, 5)
			assert.Len(t, out, n)
		}
	})

	t.Run("content-seeded and deterministic", func(t *testing.T) {
		x := tone(22050)
		a := Apply(x, 44100, 5)
		b := Apply(x, 44100, 5)
		assert.Equal(t, a, b)
	})

	t.Run("different content warps differently", func(t *testing.T) {
		x := tone(22050)
		y := make([]float64, len(x))
		for i := range y {
			y[i] = x[i] * 0.9
		}
		a := Apply(x, 44100, 5)
		b := Apply(y, 44100, 5)
		assert.NotEqual(t, a, b)
	})

	t.Run("zero bound is the identity", func(t *testing.T) {
		x := tone(1000)
		assert.Equal(t, x, Apply(x, 44100, 0))
	})

	t.Run("bound under one sample is the identity", func(t *testing.T) {
		// 0.01 ms at 44100 Hz rounds down to zero samples.
		x := tone(1000)
		assert.Equal(t, x, Apply(x, 44100, 0.01))
	})

	t.Run("warped values stay within the input range", func(t *testing.T) {
		x := tone(22050)
		out := Apply(x, 44100, 10)
		for _, v := range out {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	})

	t.Run("tiny inputs", func(t *testing.T) {
		assert.Empty(t, Apply(nil, 44100, 5))
		one := []float64{0.5}
		assert.Equal(t, one, Apply(one, 44100, 5))
	})

	t.Run("signal is actually warped", func(t *testing.T) {
		x := tone(44100)
		out := Apply(x, 44100, 10)
		require.Len(t, out, len(x))
		assert.NotEqual(t, x, out)
	})
}
