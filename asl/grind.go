package asl

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Keypair is one grinding trial: a private scalar and its 32-byte
// x-only public key.
type Keypair struct {
	Priv [32]byte
	Pub  [32]byte
}

// KeySource produces fresh uniformly random keypairs. The source must
// be cryptographically secure; tests inject deterministic ones.
type KeySource interface {
	Keypair() (Keypair, error)
}

// Roll grinds keypairs from src until one's public key carries rec's
// prefix at the given location precision, trying at most maxTries
// keys. It returns the private key hex encoded. Exhausting maxTries is
// not an error: the second return value reports whether a key was
// found. The loop never yields; callers needing cancellation should
// issue repeated calls with a small maxTries and check between them.
func Roll(src KeySource, rec Record, geobits, maxTries int) (string, bool, error) {
	prefix, mask, err := Prefix(rec, geobits)
	if err != nil {
		return "", false, err
	}
	last := len(prefix) - 1
	for i := 0; i < maxTries; i++ {
		kp, err := src.Keypair()
		if err != nil {
			return "", false, fmt.Errorf("asl: %w", err)
		}
		if !bytes.Equal(kp.Pub[:last], prefix[:last]) {
			continue
		}
		if kp.Pub[last]&mask != prefix[last]&mask {
			continue
		}
		return hex.EncodeToString(kp.Priv[:]), true, nil
	}
	return "", false, nil
}

// DecodeHex is Decode for a hex-encoded public key.
func DecodeHex(pub string, geobits int) (Record, error) {
	raw, err := hex.DecodeString(pub)
	if err != nil {
		return Record{}, fmt.Errorf("asl: public key: %w", err)
	}
	return Decode(raw, geobits)
}
