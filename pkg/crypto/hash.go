// Package crypto composes the primitives the Aurora wallet core is built
// on: SHA-256 for entropy and seed derivation, legacy Keccak-256 for
// Ethereum addresses, and blake2b-256 as the message digest applied before
// ECDSA signing.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Sha256 computes a SHA-256 hash of the input data.
func Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Keccak256 computes the legacy (pre-NIST padding) Keccak-256 digest used
// for Ethereum address derivation. This is not standard SHA3-256.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// MessageDigest hashes a raw message prior to signing. Signatures commit to
// blake2b-256(message), matching the digest the extension's original
// signing primitive applied internally.
func MessageDigest(msg []byte) [32]byte {
	return blake2b.Sum256(msg)
}
