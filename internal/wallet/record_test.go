package wallet

import (
	"errors"
	"strings"
	"testing"

	"github.com/aurora-browser/wallet-core/pkg/chain"
)

func TestGenerateFromDeviceID(t *testing.T) {
	rec, err := GenerateFromDeviceID("AbCdEfGh12", "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromDeviceID() error: %v", err)
	}

	if got := len(strings.Fields(rec.Mnemonic)); got != MnemonicWordCount {
		t.Errorf("mnemonic word count = %d, want %d", got, MnemonicWordCount)
	}
	if !ethAddressRe.MatchString(rec.Address) {
		t.Errorf("address %q should be 0x + 40 hex digits", rec.Address)
	}
	if !privKeyRe.MatchString(rec.PrivateKey) {
		t.Errorf("private key %q should be 0x + 64 hex digits", rec.PrivateKey)
	}
	if rec.ChainType != chain.Ethereum {
		t.Errorf("chain = %v, want ethereum", rec.ChainType)
	}
	if rec.Success {
		t.Error("success flag should only be set by the recovery flow")
	}
}

func TestGenerateFromDeviceID_Deterministic(t *testing.T) {
	r1, err := GenerateFromDeviceID("device1234", "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromDeviceID() error: %v", err)
	}
	r2, err := GenerateFromDeviceID("device1234", "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromDeviceID() error: %v", err)
	}

	if *r1 != *r2 {
		t.Errorf("same device id should produce identical records:\n%+v\n%+v", r1, r2)
	}
}

func TestGenerateFromDeviceID_ChainDefault(t *testing.T) {
	base, err := GenerateFromDeviceID("AbCdEfGh12", "")
	if err != nil {
		t.Fatalf("GenerateFromDeviceID() error: %v", err)
	}

	for _, selector := range []string{"ethereum", "ETHEREUM", "EthEreum"} {
		rec, err := GenerateFromDeviceID("AbCdEfGh12", selector)
		if err != nil {
			t.Fatalf("GenerateFromDeviceID(%q) error: %v", selector, err)
		}
		if *rec != *base {
			t.Errorf("selector %q should produce the same record as empty selector", selector)
		}
	}
}

func TestGenerateFromDeviceID_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
	}{
		{name: "too short", deviceID: "abc"},
		{name: "non-alphanumeric", deviceID: "abcdefghi!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateFromDeviceID(tt.deviceID, "ethereum"); !errors.Is(err, ErrInvalidDeviceID) {
				t.Errorf("error = %v, want ErrInvalidDeviceID", err)
			}
		})
	}
}

func TestGenerateFromMnemonic(t *testing.T) {
	phrase := "one two three four five six seven eight nine ten eleven twelve"
	rec, err := GenerateFromMnemonic(phrase, "polkadot")
	if err != nil {
		t.Fatalf("GenerateFromMnemonic() error: %v", err)
	}

	if rec.Mnemonic != phrase {
		t.Errorf("mnemonic should be echoed verbatim, got %q", rec.Mnemonic)
	}
	if rec.ChainType != chain.Polkadot {
		t.Errorf("chain = %v, want polkadot", rec.ChainType)
	}
	if rec.Address != rec.PublicKey {
		t.Error("non-Ethereum address should be the compressed public key")
	}
}

func TestGenerateFromMnemonic_WordCount(t *testing.T) {
	if _, err := GenerateFromMnemonic("only two words", "ethereum"); !errors.Is(err, ErrMnemonicWordCount) {
		t.Errorf("error = %v, want ErrMnemonicWordCount", err)
	}
}

func TestGenerateFromMnemonicStrict(t *testing.T) {
	junk := "one two three four five six seven eight nine ten eleven twelve"
	if _, err := GenerateFromMnemonicStrict(junk, "ethereum"); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("error = %v, want ErrInvalidMnemonic", err)
	}

	valid := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	rec, err := GenerateFromMnemonicStrict(valid, "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromMnemonicStrict() error: %v", err)
	}

	// Strict mode only adds validation; derivation is unchanged.
	loose, err := GenerateFromMnemonic(valid, "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromMnemonic() error: %v", err)
	}
	if *rec != *loose {
		t.Error("strict and permissive flows should derive identical records")
	}
}

func TestCrossFlowConsistency(t *testing.T) {
	// A wallet derived from a device id and a wallet derived from that
	// wallet's mnemonic must be the same wallet.
	fromDevice, err := GenerateFromDeviceID("AbCdEfGh12", "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromDeviceID() error: %v", err)
	}

	fromMnemonic, err := GenerateFromMnemonic(fromDevice.Mnemonic, "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromMnemonic() error: %v", err)
	}

	if fromDevice.PrivateKey != fromMnemonic.PrivateKey {
		t.Error("private keys should match across flows")
	}
	if fromDevice.PublicKey != fromMnemonic.PublicKey {
		t.Error("public keys should match across flows")
	}
	if fromDevice.Address != fromMnemonic.Address {
		t.Error("addresses should match across flows")
	}
}

func TestDecryptAndGenerate(t *testing.T) {
	phrase := "one two three four five six seven eight nine ten eleven twelve"
	rec, err := DecryptAndGenerate(phrase)
	if err != nil {
		t.Fatalf("DecryptAndGenerate() error: %v", err)
	}

	if !rec.Success {
		t.Error("recovery flow should set the success flag")
	}
	if rec.ChainType != chain.Ethereum {
		t.Errorf("chain = %v, want ethereum (recovery flow is Ethereum-only)", rec.ChainType)
	}
	if rec.Mnemonic != phrase {
		t.Errorf("mnemonic should be echoed verbatim, got %q", rec.Mnemonic)
	}

	// Identical derivation to the mnemonic flow on the Ethereum path.
	eth, err := GenerateFromMnemonic(phrase, "ethereum")
	if err != nil {
		t.Fatalf("GenerateFromMnemonic() error: %v", err)
	}
	if rec.PrivateKey != eth.PrivateKey || rec.Address != eth.Address {
		t.Error("recovery flow should derive the same wallet as the mnemonic flow")
	}
}

func TestDecryptAndGenerate_Invalid(t *testing.T) {
	if _, err := DecryptAndGenerate(""); !errors.Is(err, ErrEmptyMnemonic) {
		t.Errorf("error = %v, want ErrEmptyMnemonic", err)
	}
	if _, err := DecryptAndGenerate("only two words"); !errors.Is(err, ErrMnemonicWordCount) {
		t.Errorf("error = %v, want ErrMnemonicWordCount", err)
	}
}
