package asl

import (
	"bytes"
	"errors"
	"testing"

	"github.com/telamon/hwm-asl/geohash"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		rec     Record
		geobits int
		want    []byte
		mask    byte
	}{
		{Record{Age: 2, Sex: 1, Location: "u09t"}, 15, []byte{0xd0, 0x12, 0x06}, 0x07},
		{Record{Age: 0, Sex: 0, Location: "u"}, 5, []byte{0xd0, 0x00}, 0x01},
		{Record{Age: 3, Sex: 3, Location: "u09t"}, 20, []byte{0xd0, 0x13, 0x9f}, 0xff},
	}
	for _, test := range tests {
		got, mask, err := Prefix(test.rec, test.geobits)
		if err != nil {
			t.Errorf("Prefix(%v, %d): %v", test.rec, test.geobits, err)
			continue
		}
		if !bytes.Equal(got, test.want) || mask != test.mask {
			t.Errorf("Prefix(%v, %d) = %x mask %#02x, expected %x mask %#02x",
				test.rec, test.geobits, []byte(got), mask, test.want, test.mask)
		}
	}
}

func TestPrefixErrors(t *testing.T) {
	tests := []struct {
		rec     Record
		geobits int
		err     error
	}{
		{Record{Age: 4, Sex: 0, Location: "u09"}, 15, ErrCodeRange},
		{Record{Age: 0, Sex: -1, Location: "u09"}, 15, ErrCodeRange},
		{Record{Age: 0, Sex: 0, Location: "u!9"}, 15, geohash.ErrInvalidCharacter},
		{Record{Age: 0, Sex: 0, Location: ""}, 15, geohash.ErrPrecision},
	}
	for _, test := range tests {
		if _, _, err := Prefix(test.rec, test.geobits); !errors.Is(err, test.err) {
			t.Errorf("Prefix(%v, %d) returned %v, expected %v", test.rec, test.geobits, err, test.err)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		nbits int
		want  byte
	}{
		{9, 0x01}, {16, 0xff}, {19, 0x07}, {24, 0xff},
	}
	for _, test := range tests {
		if got := Mask(test.nbits); got != test.want {
			t.Errorf("Mask(%d) = %#02x, expected %#02x", test.nbits, got, test.want)
		}
	}
}

func TestDecode(t *testing.T) {
	pub := make([]byte, 32)
	copy(pub, []byte{0xd0, 0x12, 0x06})
	for i := 3; i < len(pub); i++ {
		pub[i] = 0xaa
	}
	rec, err := Decode(pub, 15)
	if err != nil {
		t.Fatal(err)
	}
	want := Record{Age: 2, Sex: 1, Location: "u09"}
	if rec != want {
		t.Errorf("Decode = %v, expected %v", rec, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(make([]byte, 32), 4); !errors.Is(err, geohash.ErrPrecision) {
		t.Errorf("Decode at 4 geobits returned %v, expected ErrPrecision", err)
	}
	if _, err := Decode([]byte{0xd0}, 15); err == nil {
		t.Error("Decode of a short key succeeded, expected an error")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, loc := range []string{"u09", "gcp", "kzf", "9g3w"} {
		for _, geobits := range []int{15, 20} {
			for age := 0; age < 4; age++ {
				for sex := 0; sex < 4; sex++ {
					rec := Record{Age: age, Sex: sex, Location: loc}
					eff := geobits
					if n := len(loc) * 5; n < eff {
						eff = n
					}
					prefix, mask, err := Prefix(rec, geobits)
					if err != nil {
						t.Fatalf("Prefix(%v, %d): %v", rec, geobits, err)
					}
					// Simulate a ground key: the prefix bytes with
					// the unconstrained bits of the last byte and
					// every byte after it filled with junk.
					pub := make([]byte, 32)
					copy(pub, prefix)
					last := len(prefix) - 1
					pub[last] |= ^mask & 0xa5
					for i := last + 1; i < len(pub); i++ {
						pub[i] = 0xa5
					}
					got, err := Decode(pub, eff)
					if err != nil {
						t.Fatalf("Decode(%v, %d): %v", rec, eff, err)
					}
					want := rec
					if len(loc)*5 > eff {
						want.Location = loc[:eff/5]
					}
					if got != want {
						t.Errorf("round trip of %v at %d geobits = %v, expected %v", rec, geobits, got, want)
					}
				}
			}
		}
	}
}
