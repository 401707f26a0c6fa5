// Package wallet implements the Aurora deterministic derivation pipeline:
// device id -> entropy -> mnemonic -> seed -> key pair -> address, plus
// message signing and verification against the derived keys.
//
// Every operation is a synchronous pure function. Nothing is cached or
// persisted between calls, so the package is safe for concurrent use.
package wallet

import (
	"errors"
	"fmt"

	"github.com/aurora-browser/wallet-core/pkg/crypto"
)

// DeviceIDLength is the required device identifier length.
const DeviceIDLength = 10

// EntropySize is the mnemonic entropy size in bytes (128 bits).
const EntropySize = 16

// ErrInvalidDeviceID is returned for device ids that are not exactly 10
// ASCII letters or digits.
var ErrInvalidDeviceID = errors.New("device id must be exactly 10 alphanumeric characters")

// EntropyFromDeviceID derives mnemonic entropy from a device identifier:
// the first 16 bytes of SHA-256 over the raw id bytes.
func EntropyFromDeviceID(deviceID string) ([]byte, error) {
	if len(deviceID) != DeviceIDLength || !isAlphanumeric(deviceID) {
		return nil, fmt.Errorf("%w, got %d characters", ErrInvalidDeviceID, len(deviceID))
	}
	hash := crypto.Sha256([]byte(deviceID))
	return hash[:EntropySize], nil
}

// isAlphanumeric reports whether s contains only ASCII letters and digits.
func isAlphanumeric(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
