package wavio

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTone(n int, freq float64, rate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name     string
		channels [][]float64
	}{
		{"mono", [][]float64{testTone(4410, 440, 44100)}},
		{"stereo", [][]float64{testTone(4410, 440, 44100), testTone(4410, 880, 44100)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.wav")
			require.NoError(t, Save(path, tt.channels, 44100))

			got, rate, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 44100, rate)
			require.Len(t, got, len(tt.channels))
			for c := range tt.channels {
				require.Len(t, got[c], len(tt.channels[c]))
				for i, want := range tt.channels[c] {
					// 16-bit quantization error
					assert.InDelta(t, want, got[c][i], 1e-4)
				}
			}
		})
	}
}

func TestSaveClampsOverrange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, Save(path, [][]float64{{2.5, -2.5, 0}}, 8000))

	got, _, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[0][0], 1e-4)
	assert.InDelta(t, -1.0, got[0][1], 1e-4)
}

func TestSaveNoChannels(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "empty.wav"), nil, 44100)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.wav"))
	assert.Error(t, err)
}

func TestDownmix(t *testing.T) {
	t.Run("averages channels", func(t *testing.T) {
		got := Downmix([][]float64{{1, 0, -1}, {0, 0, 1}})
		assert.Equal(t, []float64{0.5, 0, 0}, got)
	})

	t.Run("mono copy", func(t *testing.T) {
		src := []float64{0.1, 0.2}
		got := Downmix([][]float64{src})
		assert.Equal(t, src, got)
		got[0] = 9
		assert.Equal(t, 0.1, src[0])
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Downmix(nil))
	})
}
