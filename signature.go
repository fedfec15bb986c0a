package adversarial

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
)

const (
	// signatureTag is appended to the artist/title pair before hashing so
	// signatures from this system never collide with plain content hashes.
	signatureTag = "ADVERSARIAL_WATERMARK"

	// PayloadBits is the fixed length of the embedded bit sequence.
	PayloadBits = 128

	// idLen is the number of hex characters kept as the public identifier.
	idLen = 32
	// bitSourceLen is the number of hex characters expanded into the payload.
	bitSourceLen = 16
)

// Signature is the deterministic watermark identity derived from track
// metadata. The same (artist, title) pair always yields the same identifier
// and payload, which is what makes embedding reproducible and testable.
type Signature struct {
	// Hex is the full hex-encoded SHA-256 digest.
	Hex string
	// ID is the truncated display identifier (first 32 hex characters).
	ID string

	bits []float64
}

// NewSignature derives a signature from artist and title. Empty strings are
// valid inputs and produce their own distinct signature.
func NewSignature(artist, title string) Signature {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", artist, title, signatureTag)))
	digest := hex.EncodeToString(sum[:])

	// Expand the first 16 hex characters into 128 bits: each character's
	// code point contributes its 8-bit binary representation, MSB first.
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, c := range []byte(digest[:bitSourceLen]) {
		w.Write8(0, 8, c)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)

	bits := make([]float64, PayloadBits)
	for i := range bits {
		b, _ := r.ReadBitAt(i)
		if b {
			bits[i] = 1
		} else {
			bits[i] = -1
		}
	}

	return Signature{
		Hex:  digest,
		ID:   digest[:idLen],
		bits: bits,
	}
}

// Bits returns the payload as amplitudes in {-1, +1}.
func (s Signature) Bits() []float64 {
	out := make([]float64, len(s.bits))
	copy(out, s.bits)
	return out
}
