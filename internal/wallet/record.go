package wallet

import (
	"errors"
	"fmt"

	klog "github.com/aurora-browser/wallet-core/internal/log"
	"github.com/aurora-browser/wallet-core/pkg/chain"
)

// ErrEmptyMnemonic is returned by DecryptAndGenerate for an empty input,
// before the word-count check runs.
var ErrEmptyMnemonic = errors.New("mnemonic input is empty")

// Record is the assembled wallet handed back to the host.
type Record struct {
	Mnemonic   string      `json:"mnemonic"`
	PublicKey  string      `json:"publicKey"`
	PrivateKey string      `json:"privateKey"`
	Address    string      `json:"address"`
	ChainType  chain.Chain `json:"chainType"`

	// Success is set only by the decrypt-and-generate flow.
	Success bool `json:"success,omitempty"`
}

// GenerateFromDeviceID derives a full wallet from a device identifier:
// entropy from the id, a 12-word mnemonic from the entropy, then the shared
// seed/key/address tail. The same id always yields the same wallet.
func GenerateFromDeviceID(deviceID, chainType string) (*Record, error) {
	c := chain.Parse(chainType)
	logger := klog.Wallet.With().Stringer("chain", c).Logger()
	logger.Debug().Int("device_id_len", len(deviceID)).Msg("generating wallet from device id")

	entropy, err := EntropyFromDeviceID(deviceID)
	if err != nil {
		logger.Debug().Err(err).Msg("device id rejected")
		return nil, err
	}

	mnemonic, err := MnemonicFromEntropy(entropy)
	if err != nil {
		return nil, err
	}

	rec, err := assemble(mnemonic, c)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("address", rec.Address).Msg("wallet generated from device id")
	return rec, nil
}

// GenerateFromMnemonic derives a wallet from an existing phrase. Only the
// word count is validated (the contractual permissive default); the input
// phrase is echoed verbatim in the record rather than re-encoded.
func GenerateFromMnemonic(mnemonic, chainType string) (*Record, error) {
	c := chain.Parse(chainType)
	logger := klog.Wallet.With().Stringer("chain", c).Logger()

	if _, err := SplitMnemonic(mnemonic); err != nil {
		logger.Debug().Err(err).Msg("mnemonic rejected")
		return nil, err
	}

	rec, err := assemble(mnemonic, c)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("address", rec.Address).Msg("wallet generated from mnemonic")
	return rec, nil
}

// GenerateFromMnemonicStrict is GenerateFromMnemonic with full BIP-39
// validation (word list and checksum) applied first. Opt-in only.
func GenerateFromMnemonicStrict(mnemonic, chainType string) (*Record, error) {
	if err := ValidateMnemonicStrict(mnemonic); err != nil {
		return nil, err
	}
	return GenerateFromMnemonic(mnemonic, chainType)
}

// DecryptAndGenerate is the extension's recovery flow: like
// GenerateFromMnemonic but restricted to the Ethereum path, with an
// explicit empty-input rejection and a success flag in the record.
func DecryptAndGenerate(mnemonic string) (*Record, error) {
	if mnemonic == "" {
		return nil, ErrEmptyMnemonic
	}
	if _, err := SplitMnemonic(mnemonic); err != nil {
		klog.Wallet.Debug().Err(err).Msg("recovery input rejected")
		return nil, err
	}

	rec, err := assemble(mnemonic, chain.Ethereum)
	if err != nil {
		return nil, err
	}
	rec.Success = true
	klog.Wallet.Info().Str("address", rec.Address).Msg("wallet recovered from mnemonic")
	return rec, nil
}

// assemble runs the shared tail of every flow: seed from the phrase text,
// key pair from the seed, chain-formatted strings into a record.
func assemble(mnemonic string, c chain.Chain) (*Record, error) {
	seed := SeedFromMnemonic(mnemonic)
	kp, err := NewKeyPair(seed, c)
	if err != nil {
		return nil, fmt.Errorf("assemble wallet: %w", err)
	}
	defer kp.Zero()

	return &Record{
		Mnemonic:   mnemonic,
		PublicKey:  kp.PublicKeyString(),
		PrivateKey: kp.PrivateKeyString(),
		Address:    kp.Address(),
		ChainType:  c,
	}, nil
}
