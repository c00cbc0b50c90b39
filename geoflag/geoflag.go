// package geoflag maps geohashes to country flags by nearest-neighbor
// lookup over a fixed table of capital-city cells.
//
// The lookup is a heuristic: distances are XOR metrics over the packed
// geohash bits, not great-circle distances, and the table resolves ties
// in favor of the first entry.
package geoflag

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/telamon/hwm-asl/bitbuf"
	"github.com/telamon/hwm-asl/geohash"
)

// EntryBits is the precision table entries are packed at.
const EntryBits = 40

type entry struct {
	flag   string
	packed bitbuf.Buffer
}

var (
	lutOnce sync.Once
	lutErr  error
	lut     []entry
)

// table returns the process-wide lookup table, built on first use and
// immutable afterwards.
func table() ([]entry, error) {
	lutOnce.Do(func() {
		for _, line := range strings.Split(strings.TrimSpace(rawTable), "\n") {
			flag, hash, ok := strings.Cut(line, ":")
			if !ok {
				lutErr = fmt.Errorf("geoflag: malformed table entry %q", line)
				return
			}
			packed, err := geohash.Pack(hash, EntryBits)
			if err != nil {
				lutErr = fmt.Errorf("geoflag: entry %q: %w", line, err)
				return
			}
			lut = append(lut, entry{flag: flag, packed: packed})
		}
	})
	return lut, lutErr
}

// Distance computes the XOR distance between two packed geohashes.
// Both sides are truncated or zero-extended to four bytes; zero means
// identical within that window.
func Distance(a, b []byte) uint32 {
	var x, y, out [4]byte
	copy(x[:], a)
	copy(y[:], b)
	for i := 0; i < 32; i++ {
		bit := bitbuf.Buffer(x[:]).ShiftOut(0) ^ bitbuf.Buffer(y[:]).ShiftOut(0)
		bitbuf.Buffer(out[:]).ShiftIn(bit)
	}
	return binary.LittleEndian.Uint32(out[:])
}

// Of returns the flag of the table entry nearest to hash at the given
// bit precision.
func Of(hash string, bits int) (string, error) {
	entries, err := table()
	if err != nil {
		return "", err
	}
	packed, err := geohash.Pack(hash, bits)
	if err != nil {
		return "", err
	}
	best := ""
	bestDist := uint32(0)
	for i, e := range entries {
		d := Distance(packed, e.packed)
		if i == 0 || d < bestDist {
			best, bestDist = e.flag, d
		}
	}
	return best, nil
}
