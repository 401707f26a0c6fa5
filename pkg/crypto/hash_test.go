package crypto

import (
	"encoding/hex"
	"testing"
)

func TestSha256(t *testing.T) {
	// FIPS 180-2 test vector.
	got := Sha256([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("Sha256(abc) = %x, want %s", got, want)
	}
}

func TestKeccak256(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			// Distinguishes legacy Keccak from standard SHA3-256, which
			// hashes "abc" to 3a985da74fe225b2...
			name:  "abc",
			input: "abc",
			want:  "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keccak256([]byte(tt.input))
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("Keccak256(%q) = %x, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestMessageDigest(t *testing.T) {
	// blake2b-256 of the empty string.
	got := MessageDigest(nil)
	want := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("MessageDigest(nil) = %x, want %s", got, want)
	}
}

func TestMessageDigest_Deterministic(t *testing.T) {
	a := MessageDigest([]byte("hello aurora"))
	b := MessageDigest([]byte("hello aurora"))
	if a != b {
		t.Error("same message should produce the same digest")
	}
	c := MessageDigest([]byte("hello auroraa"))
	if a == c {
		t.Error("different messages should produce different digests")
	}
}
