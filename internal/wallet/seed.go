package wallet

import (
	"github.com/aurora-browser/wallet-core/pkg/crypto"
)

// SeedFromMnemonic derives a 32-byte seed as a single SHA-256 pass over the
// raw phrase text.
//
// This is deliberately NOT the BIP-39 seed algorithm: there is no PBKDF2
// key stretching and no passphrase salt. Wallets derived by the extension
// depend on this exact construction, so it is preserved bit-for-bit and
// must never be replaced with the standard derivation.
func SeedFromMnemonic(mnemonic string) [crypto.SeedSize]byte {
	return crypto.Sha256([]byte(mnemonic))
}
