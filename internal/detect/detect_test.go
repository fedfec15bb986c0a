package detect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/seed"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/ultrasonic"
)

func tone(n int, freq float64, sampleRate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

func TestUltrasonicScore(t *testing.T) {
	t.Run("zero below the capability limit", func(t *testing.T) {
		x := tone(22050, 440, 22050)
		assert.Equal(t, 0.0, UltrasonicScore(x, 22050))
		assert.Equal(t, 0.0, UltrasonicScore(x, 39999))
	})

	t.Run("silent input scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, UltrasonicScore(make([]float64, 44100), 44100))
	})

	t.Run("injected pattern raises the score", func(t *testing.T) {
		x := tone(44100, 440, 44100)
		injected := ultrasonic.Inject(x, 44100, 0.5, seed.NewRand(1))
		assert.Greater(t, UltrasonicScore(injected, 44100), UltrasonicScore(x, 44100))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, UltrasonicScore(nil, 44100))
	})
}

func TestTemporalScore(t *testing.T) {
	t.Run("silence has no beats", func(t *testing.T) {
		assert.Equal(t, 0.0, TemporalScore(make([]float64, 44100), 44100))
	})

	t.Run("short input degrades to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, TemporalScore(tone(100, 440, 44100), 44100))
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		// Clicks at irregular spacing give measurable interval variance.
		x := make([]float64, 6*44100)
		for _, at := range []int{10000, 40000, 95000, 130000, 200000, 231000} {
			for i := range 400 {
				x[at+i] = 0.9
			}
		}
		score := TemporalScore(x, 44100)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}

func TestTimbreScore(t *testing.T) {
	t.Run("silence scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, TimbreScore(make([]float64, 44100), 44100))
	})

	t.Run("empty input scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, TimbreScore(nil, 44100))
	})

	t.Run("bounded in [0, 1]", func(t *testing.T) {
		// White-ish deterministic content has high cepstral variance.
		rng := seed.NewRand(11)
		x := make([]float64, 44100)
		for i := range x {
			x[i] = rng.NormFloat64() * 0.3
		}
		score := TimbreScore(x, 44100)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
	})

	t.Run("tonal content yields a bounded nonzero score", func(t *testing.T) {
		// No ordering against other content types is asserted: the top-dB
		// floor clamp makes a pure tone's high-order cepstral variance
		// comparable to, and sometimes above, that of broadband noise.
		score := TimbreScore(tone(44100, 440, 44100), 44100)
		assert.Greater(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}
