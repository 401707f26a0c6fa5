// Aurora wallet daemon: serves the deterministic derivation and signing
// operations to the extension host over JSON-RPC 2.0.
//
// Usage:
//
//	aurora-walletd [--rpc-addr=... --rpc-port=...] Run daemon
//	aurora-walletd --help                          Show help
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aurora-browser/wallet-core/config"
	klog "github.com/aurora-browser/wallet-core/internal/log"
	"github.com/aurora-browser/wallet-core/internal/rpc"
)

const version = "0.3.0"

func main() {
	cfg, flags, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.Help {
		usage()
		return
	}
	if flags.Version {
		fmt.Println("aurora-walletd " + version)
		return
	}

	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !cfg.RPC.Enabled {
		klog.Fatal().Msg("RPC server disabled, nothing to serve")
	}

	srv := rpc.New(cfg.RPCListenAddr(), cfg.RPC)
	srv.SetStrictMnemonic(cfg.Wallet.StrictMnemonic)

	if err := srv.Start(); err != nil {
		klog.Fatal().Err(err).Msg("failed to start RPC server")
	}
	klog.Info().
		Str("addr", srv.Addr()).
		Bool("strict_mnemonic", cfg.Wallet.StrictMnemonic).
		Msg("wallet RPC listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := srv.Stop(); err != nil {
		klog.Error().Err(err).Msg("shutdown error")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aurora-walletd [flags]

Flags:
  --config <path>        Config file (key = value format)
  --rpc                  Enable RPC server (default: true)
  --rpc-addr <addr>      RPC listen address (default: 127.0.0.1)
  --rpc-port <port>      RPC listen port (default: 8545)
  --rpc-allowed <ips>    Allowed client IPs/CIDRs, comma-separated
  --rpc-cors <origins>   Allowed CORS origins, comma-separated
  --strict-mnemonic      Require full BIP-39 validation of mnemonic input
  --log-level <level>    debug, info, warn, error (default: info)
  --log-json             Log to console as JSON
  --log-file <path>      Also log to file (JSON)
  --version              Show version
`)
}
