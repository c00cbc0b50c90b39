// package geohash packs geohash strings into bit buffers of arbitrary
// precision and unpacks them back.
//
// Each character of the 32-symbol geohash alphabet contributes 5 bits.
// A requested precision that is not a multiple of 5 truncates the
// first (highest-order) character to its top nBits mod 5 bits, so
// round trips are only exact at whole-character precisions.
package geohash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/telamon/hwm-asl/bitbuf"
)

// Alphabet is the geohash base32 alphabet. Encoders and decoders must
// agree on it byte for byte.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

var (
	// ErrPrecision is returned when the effective precision of a pack
	// operation is below one character's worth of bits.
	ErrPrecision = errors.New("precision has to be at least 5 bits")
	// ErrInvalidCharacter is returned for input outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid geohash character")
)

var revAlphabet [256]int8

func init() {
	for i := range revAlphabet {
		revAlphabet[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		revAlphabet[Alphabet[i]] = int8(i)
	}
}

// Pack encodes hash into a fresh buffer of Size(effective nBits) bytes.
// The effective precision is min(len(hash)*5, nBits).
func Pack(hash string, nBits int) (bitbuf.Buffer, error) {
	if n := len(hash) * 5; n < nBits {
		nBits = n
	}
	w := bitbuf.NewWriter(nBits)
	if err := PackTo(w, hash, nBits); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// PackTo encodes hash into w at the given bit precision. The effective
// precision is min(len(hash)*5, nBits); it is an error when that falls
// below 5.
func PackTo(w *bitbuf.Writer, hash string, nBits int) error {
	if n := len(hash) * 5; n < nBits {
		nBits = n
	}
	if nBits < 5 {
		return fmt.Errorf("geohash: %w", ErrPrecision)
	}
	written := 0
	for i := 0; written < nBits; i++ {
		idx := revAlphabet[hash[i]]
		if idx < 0 {
			return fmt.Errorf("geohash: %q: %w", hash[i], ErrInvalidCharacter)
		}
		// Align the 5-bit symbol with the scratch byte's top so
		// ShiftIn pops it most significant bit first.
		val := bitbuf.Buffer{byte(idx)}
		for j := 0; j < 3; j++ {
			val.ShiftIn(0)
		}
		take := 5
		if i == 0 && nBits%5 != 0 {
			// Ragged precision: only the first character's top
			// bits are used.
			take = nBits % 5
		}
		for j := 0; j < take; j++ {
			w.WriteBit(val.ShiftIn(0))
		}
		written += take
	}
	return nil
}

// Unpack decodes the first nBits of buf back into a geohash string.
// Trailing zero-value characters are stripped; they do not survive a
// pack round trip.
func Unpack(buf []byte, nBits int) (string, error) {
	r, err := bitbuf.NewReader(buf, nBits)
	if err != nil {
		return "", fmt.Errorf("geohash: %w", err)
	}
	return UnpackFrom(r)
}

// UnpackFrom decodes all bits remaining in r as a geohash string. The
// ASL decoder uses it to unpack the location bits left over once the
// trailing metadata bits have been read back.
func UnpackFrom(r *bitbuf.Reader) (string, error) {
	nBits := r.Remaining()
	nChars := nBits / 5
	head := nBits % 5
	if head != 0 {
		nChars++
	}
	out := make([]byte, nChars)
	acc := bitbuf.Buffer{0}
	// The reader yields the stream tail first, so characters are
	// recovered last to first. Feeding each bit through the
	// accumulator's front restores bit order within a character.
	for i := nChars - 1; i >= 0; i-- {
		n := 5
		if i == 0 && head != 0 {
			n = head
		}
		acc[0] = 0
		for j := 0; j < n; j++ {
			acc.ShiftOut(r.ReadBack())
		}
		out[i] = Alphabet[acc[0]>>3]
	}
	return strings.TrimRight(string(out), "0"), nil
}
