package ultrasonic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/seed"
)

func TestInject(t *testing.T) {
	samples := make([]float64, 44100)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/44100)
	}

	t.Run("adds a bounded pattern", func(t *testing.T) {
		const strength = 0.015
		out := Inject(samples, 44100, strength, seed.NewRand(1))
		require.Len(t, out, len(samples))
		var maxDev float64
		for i := range out {
			if d := math.Abs(out[i] - samples[i]); d > maxDev {
				maxDev = d
			}
		}
		assert.Greater(t, maxDev, 0.0)
		assert.LessOrEqual(t, maxDev, strength*0.5+1e-12)
	})

	t.Run("deterministic for a fixed generator seed", func(t *testing.T) {
		a := Inject(samples, 44100, 0.003, seed.NewRand(9))
		b := Inject(samples, 44100, 0.003, seed.NewRand(9))
		assert.Equal(t, a, b)
	})

	t.Run("sample rate below the band leaves the signal unchanged", func(t *testing.T) {
		// At 16 kHz every tone sits at or above the 8 kHz Nyquist limit.
		short := samples[:16000]
		out := Inject(short, 16000, 0.015, seed.NewRand(1))
		assert.Equal(t, short, out)
	})

	t.Run("partial band injects only resolvable tones", func(t *testing.T) {
		// At 36 kHz Nyquist is 18 kHz: tones from 18 kHz up are skipped.
		out := Inject(samples, 36000, 0.015, seed.NewRand(1))
		assert.NotEqual(t, samples, out)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Inject(nil, 44100, 0.015, seed.NewRand(1)))
	})

	t.Run("stronger profiles inject more energy", func(t *testing.T) {
		weak := Inject(samples, 44100, 0.001, seed.NewRand(3))
		strong := Inject(samples, 44100, 0.015, seed.NewRand(3))
		var weakDev, strongDev float64
		for i := range samples {
			weakDev += math.Abs(weak[i] - samples[i])
			strongDev += math.Abs(strong[i] - samples[i])
		}
		assert.Greater(t, strongDev, weakDev)
	})
}
