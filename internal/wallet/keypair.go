package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/aurora-browser/wallet-core/pkg/chain"
	"github.com/aurora-browser/wallet-core/pkg/crypto"
)

// ErrKeyDerivation is returned when a seed cannot be turned into a key
// pair. Seeds are hash outputs, so this is exceedingly rare, but it must
// still surface to the host.
var ErrKeyDerivation = errors.New("failed to derive key pair from seed")

// KeyPair holds a derived secp256k1 key pair together with the chain
// selector that governs its formatting. The derivation math is identical
// for every selector; only the string representations differ.
type KeyPair struct {
	priv  *crypto.PrivateKey
	chain chain.Chain
}

// NewKeyPair constructs a key pair deterministically from a 32-byte seed.
func NewKeyPair(seed [crypto.SeedSize]byte, c chain.Chain) (*KeyPair, error) {
	priv, err := crypto.PrivateKeyFromSeed(seed[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	return &KeyPair{priv: priv, chain: c}, nil
}

// Chain returns the selector the pair was derived for.
func (kp *KeyPair) Chain() chain.Chain {
	return kp.chain
}

// PublicKeyString formats the public key for the pair's chain: Ethereum
// uses the 0x-prefixed uncompressed key (65 bytes, leading 0x04 marker),
// every other selector the bare hex of the compressed 33-byte key.
func (kp *KeyPair) PublicKeyString() string {
	switch kp.chain {
	case chain.Ethereum:
		return "0x" + hex.EncodeToString(kp.priv.PublicKeyUncompressed())
	default:
		return hex.EncodeToString(kp.priv.PublicKeyCompressed())
	}
}

// PrivateKeyString returns the 0x-prefixed 64-hex-digit private key.
func (kp *KeyPair) PrivateKeyString() string {
	return "0x" + hex.EncodeToString(kp.priv.Serialize())
}

// Address returns the chain-appropriate address string.
//
// Ethereum: last 20 bytes of Keccak-256 over the uncompressed public key
// with its 0x04 marker stripped, 0x-prefixed hex. All other selectors fall
// back to the bare hex of the compressed public key; that form is a
// placeholder carried over from the extension, not a chain-native (SS58)
// address encoding.
func (kp *KeyPair) Address() string {
	switch kp.chain {
	case chain.Ethereum:
		return ethereumAddress(kp.priv.PublicKeyUncompressed())
	default:
		return hex.EncodeToString(kp.priv.PublicKeyCompressed())
	}
}

// Zero securely zeroes the private key material.
func (kp *KeyPair) Zero() {
	kp.priv.Zero()
}

// ethereumAddress hashes the 64-byte public key body (marker stripped) and
// keeps the trailing 20 bytes.
func ethereumAddress(uncompressed []byte) string {
	body := uncompressed
	if len(body) > 0 && body[0] == crypto.UncompressedPubKeyMarker {
		body = body[1:]
	}
	digest := crypto.Keccak256(body)
	return "0x" + hex.EncodeToString(digest[len(digest)-20:])
}
