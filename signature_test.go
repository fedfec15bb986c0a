package adversarial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignature(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		test := []struct {
			name     string
			artist   string
			title    string
			wantID   string
			wantOnes int
		}{
			{"single letters", "A", "B", "774427555cb1b2c482ebf50933e413f4", 59},
			{"full names", "Test Artist", "Test Track", "e39379a0ce473f05503aa5d3bcb8871a", 60},
			{"empty inputs", "", "", "c4606f01b66fbf47243f1fef42fa9036", 56},
		}
		for _, tt := range test {
			t.Run(tt.name, func(t *testing.T) {
				sig := NewSignature(tt.artist, tt.title)
				assert.Equal(t, tt.wantID, sig.ID)
				assert.Equal(t, tt.wantID, sig.Hex[:32])
				assert.Len(t, sig.Hex, 64)

				bits := sig.Bits()
				require.Len(t, bits, PayloadBits)
				ones := 0
				for _, b := range bits {
					require.Contains(t, []float64{-1, 1}, b)
					if b == 1 {
						ones++
					}
				}
				assert.Equal(t, tt.wantOnes, ones)
			})
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := NewSignature("Artist", "Title")
		b := NewSignature("Artist", "Title")
		assert.Equal(t, a.ID, b.ID)
		assert.Equal(t, a.Bits(), b.Bits())
	})

	t.Run("distinct inputs produce distinct signatures", func(t *testing.T) {
		a := NewSignature("Artist", "Title")
		b := NewSignature("Artist", "Title2")
		c := NewSignature("Artist2", "Title")
		assert.NotEqual(t, a.ID, b.ID)
		assert.NotEqual(t, a.ID, c.ID)
		assert.NotEqual(t, b.ID, c.ID)
	})

	t.Run("bits are caller-owned copies", func(t *testing.T) {
		sig := NewSignature("A", "B")
		bits := sig.Bits()
		bits[0] = 42
		assert.NotEqual(t, 42.0, sig.Bits()[0])
	})
}
