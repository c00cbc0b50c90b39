package geoflag

import (
	"testing"

	"github.com/telamon/hwm-asl/bitbuf"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b []byte
		want uint32
	}{
		{[]byte{0xd0, 0x09}, []byte{0xd0, 0x09}, 0},
		{nil, nil, 0},
		// A difference in the first byte's low bit surfaces in the
		// result's top byte after the little-endian reinterpretation.
		{[]byte{0x01}, []byte{0x00}, 0x80000000},
		{[]byte{0x80}, []byte{0x00}, 0x01000000},
	}
	for _, test := range tests {
		if got := Distance(test.a, test.b); got != test.want {
			t.Errorf("Distance(%x, %x) = %#x, expected %#x", test.a, test.b, got, test.want)
		}
		if got := Distance(test.b, test.a); got != test.want {
			t.Errorf("Distance(%x, %x) is not symmetric", test.a, test.b)
		}
	}
}

func TestDistanceLeavesArgs(t *testing.T) {
	a := []byte{0xd0, 0x09}
	b := []byte{0x7a, 0x75}
	Distance(a, b)
	if a[0] != 0xd0 || b[0] != 0x7a {
		t.Error("Distance mutated its arguments")
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		hash string
		bits int
		want string
	}{
		{"u09", 15, "🇫🇷"},
		{"gcp", 15, "🇬🇧"},
		{"wx4", 15, "🇨🇳"},
		{"kzf", 15, "🇰🇪"},
		// Entry precision clamps, so wider queries still hit exactly.
		{"u09", 40, "🇫🇷"},
		// Helsinki and Tallinn share a cell; the earlier entry wins.
		{"ud9", 15, "🇫🇮"},
	}
	for _, test := range tests {
		got, err := Of(test.hash, test.bits)
		if err != nil {
			t.Errorf("Of(%q, %d): %v", test.hash, test.bits, err)
			continue
		}
		if got != test.want {
			t.Errorf("Of(%q, %d) = %q, expected %q", test.hash, test.bits, got, test.want)
		}
	}
}

func TestOfInvalid(t *testing.T) {
	if _, err := Of("!!", 15); err == nil {
		t.Error("Of with an invalid geohash succeeded, expected an error")
	}
}

func TestTable(t *testing.T) {
	entries, err := table()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) < 100 {
		t.Errorf("table has %d entries, expected at least 100", len(entries))
	}
	for _, e := range entries {
		if want := bitbuf.Size(15); len(e.packed) != want {
			t.Errorf("entry %s packs to %d bytes, expected %d", e.flag, len(e.packed), want)
		}
	}
}
