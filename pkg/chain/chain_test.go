package chain

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Chain
	}{
		{name: "empty defaults to ethereum", input: "", want: Ethereum},
		{name: "ethereum lowercase", input: "ethereum", want: Ethereum},
		{name: "ethereum mixed case", input: "EthEreum", want: Ethereum},
		{name: "polkadot", input: "polkadot", want: Polkadot},
		{name: "polkadot uppercase", input: "POLKADOT", want: Polkadot},
		{name: "kusama", input: "kusama", want: Kusama},
		{name: "unknown selector", input: "solana", want: Unrecognized},
		{name: "whitespace is not trimmed", input: " ethereum", want: Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		chain Chain
		want  string
	}{
		{Ethereum, "ethereum"},
		{Polkadot, "polkadot"},
		{Kusama, "kusama"},
		{Unrecognized, "unrecognized"},
	}

	for _, tt := range tests {
		if got := tt.chain.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Polkadot)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"polkadot"` {
		t.Errorf("Marshal() = %s, want %q", data, `"polkadot"`)
	}

	var c Chain
	if err := json.Unmarshal([]byte(`"KUSAMA"`), &c); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if c != Kusama {
		t.Errorf("Unmarshal() = %v, want %v", c, Kusama)
	}
}
