package crypto

import (
	"bytes"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// SignatureSize is the length of a recoverable signature: r(32) + s(32) +
// recovery id(1).
const SignatureSize = 65

// compactRecoveryOffset is the header offset SignCompact/RecoverCompact
// apply to the recovery id for signatures made over a compressed key.
const compactRecoveryOffset = 27 + 4

// SignRecoverable signs a 32-byte digest with ECDSA/secp256k1 and returns
// the signature laid out as r || s || v, where v is the recovery id (0-3).
// Nonces follow RFC 6979, so the output is a pure function of key and
// digest.
func (pk *PrivateKey) SignRecoverable(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	compact := ecdsa.SignCompact(pk.key, digest, true)
	// SignCompact puts the recovery header first; move it to the tail and
	// strip the offset.
	sig := make([]byte, SignatureSize)
	copy(sig, compact[1:])
	sig[SignatureSize-1] = compact[0] - compactRecoveryOffset
	return sig, nil
}

// VerifyRecoverable reports whether sig (r || s || v) over digest was made
// by the key matching the given 33-byte compressed public key. The signing
// key is recovered from the signature and compared byte-for-byte, which is
// the verification the extension host relies on.
func VerifyRecoverable(digest, sig, compressedPub []byte) bool {
	if len(digest) != 32 || len(sig) != SignatureSize || len(compressedPub) != CompressedPubKeySize {
		return false
	}
	if sig[SignatureSize-1] > 3 {
		return false
	}
	compact := make([]byte, SignatureSize)
	compact[0] = sig[SignatureSize-1] + compactRecoveryOffset
	copy(compact[1:], sig[:SignatureSize-1])
	pub, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return false
	}
	return bytes.Equal(pub.SerializeCompressed(), compressedPub)
}
