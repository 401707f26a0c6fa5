package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicWordCount is the phrase length produced and accepted by the
// pipeline (128 bits of entropy plus checksum).
const MnemonicWordCount = 12

var (
	// ErrMnemonicEncoding is returned when entropy cannot be encoded as a
	// phrase. It should not occur for valid 128-bit entropy.
	ErrMnemonicEncoding = errors.New("failed to encode entropy as mnemonic")

	// ErrMnemonicWordCount is returned when a phrase does not split into
	// exactly 12 words.
	ErrMnemonicWordCount = errors.New("mnemonic must contain exactly 12 words")

	// ErrInvalidMnemonic is returned by strict validation when a phrase
	// fails the BIP-39 word-list or checksum check.
	ErrInvalidMnemonic = errors.New("mnemonic failed BIP-39 validation")
)

// MnemonicFromEntropy encodes 16 bytes of entropy as a 12-word BIP-39
// phrase from the English reference word list.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMnemonicEncoding, err)
	}
	return mnemonic, nil
}

// SplitMnemonic splits a phrase on whitespace and requires exactly 12
// tokens. Words are not checked against the reference list and the
// embedded checksum is not verified: the extension host depends on this
// permissive behavior, so it must not be tightened here. Callers wanting
// real validation use ValidateMnemonicStrict.
func SplitMnemonic(mnemonic string) ([]string, error) {
	words := strings.Fields(mnemonic)
	if len(words) != MnemonicWordCount {
		return nil, fmt.Errorf("%w, got %d", ErrMnemonicWordCount, len(words))
	}
	return words, nil
}

// ValidateMnemonicStrict checks a phrase against the full BIP-39 rules
// (word count, word-list membership, checksum). Opt-in only; never applied
// by default.
func ValidateMnemonicStrict(mnemonic string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}
