// package asl embeds Age/Sex/Location metadata in the leading bits of
// x-only public keys and recovers it again.
//
// The prefix layout is one bit stream, most significant bit first:
// geobits bits of geohash, then the sex code's high and low bit, then
// the age code's high and low bit. Builder and decoder share the
// layout through the bitbuf cursors, so the orderings mirror each
// other by construction.
package asl

import (
	"errors"
	"fmt"

	"github.com/telamon/hwm-asl/bitbuf"
	"github.com/telamon/hwm-asl/geohash"
)

const (
	// DefaultGeoBits is the default location precision. 15 bits (three
	// geohash characters) keeps the expected search around 2^19 keys.
	DefaultGeoBits = 15
	// DefaultMaxTries bounds a single Roll call.
	DefaultMaxTries = 500000
)

// ErrCodeRange is returned when an age or sex code is outside 0..3.
var ErrCodeRange = errors.New("age and sex codes must be within 0..3")

// Record is the metadata embedded in a key. Age and Sex are opaque
// 2-bit ordinal codes; their meanings are owned by the presentation
// layer.
type Record struct {
	Age      int
	Sex      int
	Location string
}

// Prefix builds the target bit pattern for rec at the given location
// precision, along with the mask selecting the significant bits of the
// pattern's last byte.
func Prefix(rec Record, geobits int) (bitbuf.Buffer, byte, error) {
	if rec.Age < 0 || rec.Age > 3 || rec.Sex < 0 || rec.Sex > 3 {
		return nil, 0, fmt.Errorf("asl: %w", ErrCodeRange)
	}
	// A short location caps the effective precision, matching the
	// clamp inside PackTo. The caller must decode at the same
	// effective precision.
	if n := len(rec.Location) * 5; n < geobits {
		geobits = n
	}
	nbits := geobits + 4
	w := bitbuf.NewWriter(nbits)
	if err := geohash.PackTo(w, rec.Location, geobits); err != nil {
		return nil, 0, err
	}
	w.WriteBit(byte(rec.Sex >> 1))
	w.WriteBit(byte(rec.Sex))
	w.WriteBit(byte(rec.Age >> 1))
	w.WriteBit(byte(rec.Age))
	return w.Bytes(), Mask(nbits), nil
}

// Mask returns the final-byte mask for an nbits-long prefix.
func Mask(nbits int) byte {
	if r := nbits % 8; r != 0 {
		return 1<<r - 1
	}
	return 0xFF
}

// Decode recovers the record embedded in the leading geobits+4 bits of
// a public key. It is the exact inverse of Prefix: the age and sex
// bits are popped from the stream tail in the reverse of the order the
// builder appended them, then the remaining bits unpack as the
// location.
func Decode(pub []byte, geobits int) (Record, error) {
	if geobits < 5 {
		return Record{}, fmt.Errorf("asl: %w", geohash.ErrPrecision)
	}
	r, err := bitbuf.NewReader(pub, geobits+4)
	if err != nil {
		return Record{}, fmt.Errorf("asl: %w", err)
	}
	age := int(r.ReadBack())
	age |= int(r.ReadBack()) << 1
	sex := int(r.ReadBack())
	sex |= int(r.ReadBack()) << 1
	// The reader's copy now holds the bare geohash bits in the same
	// alignment a geobits-wide pack would produce.
	loc, err := geohash.UnpackFrom(r)
	if err != nil {
		return Record{}, err
	}
	return Record{Age: age, Sex: sex, Location: loc}, nil
}
