// Package config handles runtime configuration for the wallet daemon and
// CLI: RPC exposure, logging, and wallet behavior toggles. Derivation rules
// themselves are not configurable; they are fixed by the host contract.
package config

import "fmt"

// Config holds runtime configuration.
type Config struct {
	// RPC server
	RPC RPCConfig

	// Wallet behavior
	Wallet WalletConfig

	// Logging
	Log LogConfig
}

// RPCConfig holds JSON-RPC server settings.
type RPCConfig struct {
	Enabled     bool     `conf:"rpc.enabled"`
	Addr        string   `conf:"rpc.addr"`
	Port        int      `conf:"rpc.port"`
	AllowedIPs  []string `conf:"rpc.allowed_ips"`
	CORSOrigins []string `conf:"rpc.cors"`
}

// WalletConfig holds wallet behavior settings.
type WalletConfig struct {
	// StrictMnemonic opts into full BIP-39 word-list and checksum
	// validation of mnemonic input. The permissive word-count-only default
	// is contractual and is never tightened implicitly.
	StrictMnemonic bool `conf:"wallet.strict_mnemonic"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	JSON  bool   `conf:"log.json"`
	File  string `conf:"log.file"`
}

// RPCListenAddr returns the host:port the RPC server binds to.
func (c *Config) RPCListenAddr() string {
	return fmt.Sprintf("%s:%d", c.RPC.Addr, c.RPC.Port)
}
