package wallet

import (
	"regexp"
	"testing"

	"github.com/aurora-browser/wallet-core/pkg/chain"
	"github.com/aurora-browser/wallet-core/pkg/crypto"
)

var (
	ethAddressRe = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
	ethPubKeyRe  = regexp.MustCompile(`^0x04[0-9a-f]{128}$`)
	privKeyRe    = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	barePubKeyRe = regexp.MustCompile(`^0[23][0-9a-f]{64}$`)
)

func testKeyPair(t *testing.T, c chain.Chain) *KeyPair {
	t.Helper()
	seed := SeedFromMnemonic("legal winner thank year wave sausage worth useful legal winner thank yellow")
	kp, err := NewKeyPair(seed, c)
	if err != nil {
		t.Fatalf("NewKeyPair() error: %v", err)
	}
	return kp
}

func TestKeyPair_Ethereum(t *testing.T) {
	kp := testKeyPair(t, chain.Ethereum)

	if pub := kp.PublicKeyString(); !ethPubKeyRe.MatchString(pub) {
		t.Errorf("public key %q should be 0x04-prefixed uncompressed hex", pub)
	}
	if priv := kp.PrivateKeyString(); !privKeyRe.MatchString(priv) {
		t.Errorf("private key %q should be 0x + 64 hex digits", priv)
	}
	if addr := kp.Address(); !ethAddressRe.MatchString(addr) {
		t.Errorf("address %q should be 0x + 40 hex digits", addr)
	}
}

func TestKeyPair_CompressedChains(t *testing.T) {
	for _, c := range []chain.Chain{chain.Polkadot, chain.Kusama, chain.Unrecognized} {
		t.Run(c.String(), func(t *testing.T) {
			kp := testKeyPair(t, c)

			pub := kp.PublicKeyString()
			if !barePubKeyRe.MatchString(pub) {
				t.Errorf("public key %q should be bare hex of a compressed key", pub)
			}
			// Placeholder encoding: address is the compressed public key.
			if addr := kp.Address(); addr != pub {
				t.Errorf("address %q should equal the compressed public key %q", addr, pub)
			}
			if priv := kp.PrivateKeyString(); !privKeyRe.MatchString(priv) {
				t.Errorf("private key %q should be 0x + 64 hex digits", priv)
			}
		})
	}
}

func TestKeyPair_SameKeyAcrossChains(t *testing.T) {
	// Selectors change formatting only, never the derivation math.
	eth := testKeyPair(t, chain.Ethereum)
	dot := testKeyPair(t, chain.Polkadot)
	if eth.PrivateKeyString() != dot.PrivateKeyString() {
		t.Error("chain selector must not change the derived private key")
	}
}

func TestNewKeyPair_InvalidSeed(t *testing.T) {
	var zero [crypto.SeedSize]byte
	if _, err := NewKeyPair(zero, chain.Ethereum); err == nil {
		t.Error("all-zero seed should fail key derivation")
	}
}
