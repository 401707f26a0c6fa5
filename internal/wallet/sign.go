package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	klog "github.com/aurora-browser/wallet-core/internal/log"
	"github.com/aurora-browser/wallet-core/pkg/crypto"
)

// privateKeyHexLength is "0x" plus 64 hex digits.
const privateKeyHexLength = 66

var (
	// ErrInvalidPrivateKey is returned for private key strings that are not
	// 0x-prefixed 64-digit hex.
	ErrInvalidPrivateKey = errors.New("private key must be a 0x-prefixed 64-digit hex string")

	// ErrInvalidPublicKey is returned for public key strings missing the 0x
	// prefix or decoding to fewer than 33 bytes.
	ErrInvalidPublicKey = errors.New("public key must be 0x-prefixed hex of at least 33 bytes")

	// ErrInvalidSignature is returned for signature strings missing the 0x
	// prefix.
	ErrInvalidSignature = errors.New("signature must be a 0x-prefixed hex string")

	// ErrInvalidSignatureLength is returned when a signature does not
	// decode to exactly 65 bytes.
	ErrInvalidSignatureLength = errors.New("signature must decode to exactly 65 bytes")
)

// Verification status strings returned alongside the validity flag.
const (
	StatusSignatureValid   = "Signature is valid"
	StatusSignatureInvalid = "Signature is invalid"
)

// SignMessage signs the raw message bytes with the given private key and
// returns the 65-byte r || s || v signature as 0x-prefixed hex. The message
// is committed to via blake2b-256, the digest the signing primitive has
// always applied in this pipeline.
func SignMessage(privateKeyHex, message string) (string, error) {
	if !strings.HasPrefix(privateKeyHex, "0x") || len(privateKeyHex) != privateKeyHexLength {
		return "", fmt.Errorf("%w, got %d characters", ErrInvalidPrivateKey, len(privateKeyHex))
	}

	keyBytes, err := hex.DecodeString(privateKeyHex[2:])
	if err != nil {
		return "", fmt.Errorf("decode private key: %w", err)
	}

	priv, err := crypto.PrivateKeyFromSeed(keyBytes)
	if err != nil {
		return "", fmt.Errorf("load private key: %w", err)
	}
	defer priv.Zero()

	digest := crypto.MessageDigest([]byte(message))
	sig, err := priv.SignRecoverable(digest[:])
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}

	klog.Keys.Debug().Int("message_len", len(message)).Msg("message signed")
	return "0x" + hex.EncodeToString(sig), nil
}

// VerifySignature checks a 65-byte signature against a message and public
// key, returning the validity flag plus a human-readable status string.
//
// The public key may decode to more than 33 bytes; only the trailing 33
// bytes are considered, preserving the extension's tolerance for inputs
// that carry extra leading material. Purely a predicate: no key material is
// mutated.
func VerifySignature(publicKeyHex, message, signatureHex string) (bool, string, error) {
	if !strings.HasPrefix(publicKeyHex, "0x") {
		return false, "", ErrInvalidPublicKey
	}
	pubBytes, err := hex.DecodeString(publicKeyHex[2:])
	if err != nil {
		return false, "", fmt.Errorf("decode public key: %w", err)
	}
	if len(pubBytes) < crypto.CompressedPubKeySize {
		return false, "", fmt.Errorf("%w, got %d bytes", ErrInvalidPublicKey, len(pubBytes))
	}
	compressed := pubBytes[len(pubBytes)-crypto.CompressedPubKeySize:]
	if len(pubBytes) == crypto.UncompressedPubKeySize && pubBytes[0] == crypto.UncompressedPubKeyMarker {
		// A genuine uncompressed key: compress it instead of taking the
		// trailing bytes, so Ethereum-formatted keys verify too.
		if c, err := crypto.CompressPublicKey(pubBytes); err == nil {
			compressed = c
		}
	}

	if !strings.HasPrefix(signatureHex, "0x") {
		return false, "", ErrInvalidSignature
	}
	sigBytes, err := hex.DecodeString(signatureHex[2:])
	if err != nil {
		return false, "", fmt.Errorf("decode signature: %w", err)
	}
	if len(sigBytes) != crypto.SignatureSize {
		return false, "", fmt.Errorf("%w, got %d", ErrInvalidSignatureLength, len(sigBytes))
	}

	digest := crypto.MessageDigest([]byte(message))
	valid := crypto.VerifyRecoverable(digest[:], sigBytes, compressed)

	klog.Keys.Debug().Bool("valid", valid).Msg("signature verified")
	if valid {
		return true, StatusSignatureValid, nil
	}
	return false, StatusSignatureInvalid, nil
}
