// package keys generates and converts the secp256k1 keypairs consumed
// by the grinder. Public keys use the BIP-340 x-only convention: the
// 32-byte x coordinate of the even-Y point.
package keys

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/telamon/hwm-asl/asl"
)

// ErrInvalidScalar is returned for private keys that are zero or not
// below the curve order.
var ErrInvalidScalar = errors.New("keys: invalid private key scalar")

// Source draws fresh random keypairs from the system's secure RNG. It
// is the production KeySource for asl.Roll.
type Source struct{}

// Keypair generates a uniformly random private key and derives its
// x-only public key.
func (Source) Keypair() (asl.Keypair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return asl.Keypair{}, fmt.Errorf("keys: %w", err)
	}
	var kp asl.Keypair
	copy(kp.Priv[:], priv.Serialize())
	copy(kp.Pub[:], schnorr.SerializePubKey(priv.PubKey()))
	return kp, nil
}

// Derive returns the x-only public key of a private scalar.
func Derive(priv [32]byte) ([32]byte, error) {
	var pub [32]byte
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetBytes(&priv); overflow != 0 || scalar.IsZero() {
		return pub, ErrInvalidScalar
	}
	key := secp256k1.NewPrivateKey(&scalar)
	defer key.Zero()
	copy(pub[:], schnorr.SerializePubKey(key.PubKey()))
	return pub, nil
}

// ParseHex decodes a 32-byte hex string, for accepting keys on the
// command line.
func ParseHex(s string) ([32]byte, error) {
	var key [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("keys: %w", err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("keys: expected %d key bytes, got %d", len(key), len(raw))
	}
	copy(key[:], raw)
	return key, nil
}
