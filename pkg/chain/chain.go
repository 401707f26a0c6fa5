// Package chain defines the target-chain selector used throughout the
// wallet core. The selector is resolved from its string form exactly once
// at each entry boundary; everything downstream switches on the variant.
package chain

import (
	"encoding/json"
	"strings"
)

// Chain identifies the blockchain a wallet is being derived for.
type Chain uint8

const (
	// Ethereum is the default chain. An empty selector string resolves here.
	Ethereum Chain = iota
	Polkadot
	Kusama
	// Unrecognized covers any selector string we do not know. Key derivation
	// is identical to the other variants; only formatting differs.
	Unrecognized
)

// Parse resolves a selector string to a Chain. Matching is case-insensitive.
// An empty string resolves to Ethereum.
func Parse(s string) Chain {
	switch strings.ToLower(s) {
	case "", "ethereum":
		return Ethereum
	case "polkadot":
		return Polkadot
	case "kusama":
		return Kusama
	default:
		return Unrecognized
	}
}

// String returns the canonical lowercase name of the chain.
func (c Chain) String() string {
	switch c {
	case Ethereum:
		return "ethereum"
	case Polkadot:
		return "polkadot"
	case Kusama:
		return "kusama"
	default:
		return "unrecognized"
	}
}

// MarshalJSON encodes the chain as its canonical name.
func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a selector string, applying the same normalization
// as Parse.
func (c *Chain) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Parse(s)
	return nil
}
