package config

import (
	"flag"
	"fmt"
	"os"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Config file
	Config string

	// RPC
	RPC        bool
	RPCAddr    string
	RPCPort    int
	RPCAllowed string
	RPCCORS    string

	// Wallet
	StrictMnemonic bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetRPC     bool
	SetStrict  bool
	SetLogJSON bool
}

// ParseFlags parses command-line flags.
func ParseFlags() *Flags {
	f := &Flags{}
	fs := flag.NewFlagSet("aurora-walletd", flag.ContinueOnError)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Config file
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// RPC
	fs.BoolVar(&f.RPC, "rpc", true, "Enable RPC server")
	fs.StringVar(&f.RPCAddr, "rpc-addr", "", "RPC listen address")
	fs.IntVar(&f.RPCPort, "rpc-port", 0, "RPC listen port")
	fs.StringVar(&f.RPCAllowed, "rpc-allowed", "", "Allowed IPs for RPC (comma-separated)")
	fs.StringVar(&f.RPCCORS, "rpc-cors", "", "Allowed CORS origins for RPC (comma-separated)")

	// Wallet
	fs.BoolVar(&f.StrictMnemonic, "strict-mnemonic", false, "Require full BIP-39 validation of mnemonic input")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path (JSON output)")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Log to console as JSON")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Track which bool flags were explicitly set so defaults don't
	// override file config.
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "rpc":
			f.SetRPC = true
		case "strict-mnemonic":
			f.SetStrict = true
		case "log-json":
			f.SetLogJSON = true
		}
	})

	f.Args = fs.Args()
	return f
}

// Apply overlays explicitly-set flags onto a Config.
func (f *Flags) Apply(cfg *Config) {
	if f.SetRPC {
		cfg.RPC.Enabled = f.RPC
	}
	if f.RPCAddr != "" {
		cfg.RPC.Addr = f.RPCAddr
	}
	if f.RPCPort != 0 {
		cfg.RPC.Port = f.RPCPort
	}
	if f.RPCAllowed != "" {
		cfg.RPC.AllowedIPs = splitList(f.RPCAllowed)
	}
	if f.RPCCORS != "" {
		cfg.RPC.CORSOrigins = splitList(f.RPCCORS)
	}
	if f.SetStrict {
		cfg.Wallet.StrictMnemonic = f.StrictMnemonic
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load builds the effective configuration: defaults, overlaid by an
// optional config file, overlaid by flags.
func Load() (*Config, *Flags, error) {
	flags := ParseFlags()
	cfg := Default()

	if flags.Config != "" {
		values, err := LoadFile(flags.Config)
		if err != nil {
			return nil, nil, fmt.Errorf("load config file: %w", err)
		}
		if err := ApplyFileConfig(cfg, values); err != nil {
			return nil, nil, err
		}
	}

	flags.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, flags, nil
}
