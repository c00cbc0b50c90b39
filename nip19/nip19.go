// package nip19 implements the bech32 entity encoding used by Nostr
// for public and secret keys.
package nip19

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Human-readable prefixes.
const (
	HRPPub = "npub"
	HRPSec = "nsec"
)

var (
	ErrKeyLength = errors.New("nip19: key must be 32 bytes")
	ErrPrefix    = errors.New("nip19: unexpected prefix")
)

// Encode wraps a 32-byte key in a bech32 entity with the given prefix.
func Encode(hrp string, key []byte) (string, error) {
	if len(key) != 32 {
		return "", ErrKeyLength
	}
	conv, err := bech32.ConvertBits(key, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("nip19: %w", err)
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", fmt.Errorf("nip19: %w", err)
	}
	return s, nil
}

// Decode unwraps a bech32 entity and returns its prefix and 32-byte
// payload.
func Decode(s string) (string, []byte, error) {
	hrp, conv, err := bech32.Decode(s)
	if err != nil {
		return "", nil, fmt.Errorf("nip19: %w", err)
	}
	key, err := bech32.ConvertBits(conv, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("nip19: %w", err)
	}
	if len(key) != 32 {
		return "", nil, ErrKeyLength
	}
	return hrp, key, nil
}

// EncodePublicKey encodes an x-only public key as npub.
func EncodePublicKey(pub []byte) (string, error) {
	return Encode(HRPPub, pub)
}

// EncodeSecretKey encodes a private key as nsec.
func EncodeSecretKey(priv []byte) (string, error) {
	return Encode(HRPSec, priv)
}

// DecodePublicKey decodes an npub entity.
func DecodePublicKey(s string) ([]byte, error) {
	hrp, key, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if hrp != HRPPub {
		return nil, fmt.Errorf("%w: %q", ErrPrefix, hrp)
	}
	return key, nil
}
