package config

// Default returns the default configuration: RPC bound to loopback only,
// permissive mnemonic validation, colored console logging.
func Default() *Config {
	return &Config{
		RPC: RPCConfig{
			Enabled:    true,
			Addr:       "127.0.0.1",
			Port:       8545,
			AllowedIPs: []string{"127.0.0.1"},
		},
		Wallet: WalletConfig{
			StrictMnemonic: false,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
