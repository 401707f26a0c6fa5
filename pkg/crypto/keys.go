package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key material sizes in bytes.
const (
	SeedSize                 = 32
	PrivateKeySize           = 32
	CompressedPubKeySize     = 33
	UncompressedPubKeySize   = 65
	UncompressedPubKeyMarker = 0x04
)

// ErrInvalidSeed is returned when a seed does not map to a usable secp256k1
// scalar (zero, or at/above the curve order). Seeds here are hash outputs,
// so hitting this is astronomically unlikely, but callers must handle it.
var ErrInvalidSeed = errors.New("seed is not a valid secp256k1 scalar")

// PrivateKey wraps a secp256k1 private key for ECDSA signing.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromSeed interprets a 32-byte seed directly as a secp256k1
// private scalar. The same seed always yields the same key.
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(seed)
	if overflow || scalar.IsZero() {
		return nil, ErrInvalidSeed
	}
	key := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	return &PrivateKey{key: key}, nil
}

// CompressPublicKey converts a 65-byte uncompressed public key (leading
// 0x04 marker) into its 33-byte compressed form. The point is validated as
// part of parsing.
func CompressPublicKey(uncompressed []byte) ([]byte, error) {
	if len(uncompressed) != UncompressedPubKeySize || uncompressed[0] != UncompressedPubKeyMarker {
		return nil, fmt.Errorf("public key must be %d bytes with a leading %#x marker",
			UncompressedPubKeySize, UncompressedPubKeyMarker)
	}
	pub, err := secp256k1.ParsePubKey(uncompressed)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return pub.SerializeCompressed(), nil
}

// PublicKeyCompressed returns the 33-byte compressed public key.
func (pk *PrivateKey) PublicKeyCompressed() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// PublicKeyUncompressed returns the 65-byte uncompressed public key,
// including the leading 0x04 marker byte.
func (pk *PrivateKey) PublicKeyUncompressed() []byte {
	return pk.key.PubKey().SerializeUncompressed()
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}
