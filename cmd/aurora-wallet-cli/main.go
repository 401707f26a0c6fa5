// aurora-wallet-cli is a command-line client for the Aurora wallet core.
// It derives locally by default and can target a running aurora-walletd
// with --rpc.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/aurora-browser/wallet-core/internal/rpc"
	"github.com/aurora-browser/wallet-core/internal/rpcclient"
	"github.com/aurora-browser/wallet-core/internal/wallet"
	"golang.org/x/term"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	rpcURL := ""
	strict := false

	// Scan for --rpc and --strict before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--rpc" && len(args) > 1:
			rpcURL = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--rpc="):
			rpcURL = args[0][len("--rpc="):]
			args = args[1:]
		case args[0] == "--strict":
			strict = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs, rpcURL)
	case "import":
		cmdImport(cmdArgs, rpcURL, strict)
	case "recover":
		cmdRecover(cmdArgs, rpcURL)
	case "sign":
		cmdSign(cmdArgs, rpcURL)
	case "verify":
		cmdVerify(cmdArgs, rpcURL)
	case "version", "--version", "-v":
		fmt.Println("aurora-wallet-cli " + version)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aurora-wallet-cli [global flags] <command> [flags]

Global flags:
  --rpc <url>     Route through a running aurora-walletd instead of
                  deriving locally (e.g. http://127.0.0.1:8545)
  --strict        Require full BIP-39 validation of mnemonic input
                  (local mode only; the daemon's setting applies over RPC)

Commands:
  generate --device-id <id> [--chain <c>]
                  Derive a wallet from a 10-character device identifier
  import [--chain <c>] [--mnemonic "..."]
                  Derive a wallet from a 12-word mnemonic
                  (prompted for, hidden, when --mnemonic is omitted)
  recover [--mnemonic "..."]
                  Re-derive the extension's recovery record (Ethereum)
  sign --message <msg> [--key <0xhex>]
                  Sign a message; the key is prompted for, hidden,
                  when --key is omitted
  verify --pubkey <0xhex> --message <msg> --signature <0xhex>
                  Check a signature against a message and public key
  version         Show version
`)
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(args []string, rpcURL string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	deviceID := fs.String("device-id", "", "Device identifier (10 alphanumeric chars)")
	chainType := fs.String("chain", "", "Chain type (ethereum, polkadot, kusama)")
	fs.Parse(args)

	if *deviceID == "" {
		fatal("Usage: aurora-wallet-cli generate --device-id <id> [--chain <c>]")
	}

	if rpcURL != "" {
		client := rpcclient.New(rpcURL)
		var rec wallet.Record
		if err := client.Call("wallet_generateFromDeviceId",
			rpc.DeviceIDParam{DeviceID: *deviceID, ChainType: *chainType}, &rec); err != nil {
			fatal("wallet_generateFromDeviceId: %v", err)
		}
		printRecord(&rec)
		return
	}

	rec, err := wallet.GenerateFromDeviceID(*deviceID, *chainType)
	if err != nil {
		fatal("generate: %v", err)
	}
	printRecord(rec)
}

// ── import ──────────────────────────────────────────────────────────────

func cmdImport(args []string, rpcURL string, strict bool) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	mnemonic := fs.String("mnemonic", "", "12-word mnemonic phrase")
	chainType := fs.String("chain", "", "Chain type (ethereum, polkadot, kusama)")
	fs.Parse(args)

	phrase := *mnemonic
	if phrase == "" {
		secret, err := readSecret("Enter mnemonic: ")
		if err != nil {
			fatal("read mnemonic: %v", err)
		}
		phrase = string(secret)
	}

	if rpcURL != "" {
		client := rpcclient.New(rpcURL)
		var rec wallet.Record
		if err := client.Call("wallet_generateFromMnemonic",
			rpc.MnemonicParam{Mnemonic: phrase, ChainType: *chainType}, &rec); err != nil {
			fatal("wallet_generateFromMnemonic: %v", err)
		}
		printRecord(&rec)
		return
	}

	var (
		rec *wallet.Record
		err error
	)
	if strict {
		rec, err = wallet.GenerateFromMnemonicStrict(phrase, *chainType)
	} else {
		rec, err = wallet.GenerateFromMnemonic(phrase, *chainType)
	}
	if err != nil {
		fatal("import: %v", err)
	}
	printRecord(rec)
}

// ── recover ─────────────────────────────────────────────────────────────

func cmdRecover(args []string, rpcURL string) {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	mnemonic := fs.String("mnemonic", "", "12-word mnemonic phrase")
	fs.Parse(args)

	phrase := *mnemonic
	if phrase == "" {
		secret, err := readSecret("Enter mnemonic: ")
		if err != nil {
			fatal("read mnemonic: %v", err)
		}
		phrase = string(secret)
	}

	if rpcURL != "" {
		client := rpcclient.New(rpcURL)
		var rec wallet.Record
		if err := client.Call("wallet_decryptAndGenerateMnemonic",
			rpc.RecoverParam{Mnemonic: phrase}, &rec); err != nil {
			fatal("wallet_decryptAndGenerateMnemonic: %v", err)
		}
		printRecord(&rec)
		return
	}

	rec, err := wallet.DecryptAndGenerate(phrase)
	if err != nil {
		fatal("recover: %v", err)
	}
	printRecord(rec)
}

// ── sign ────────────────────────────────────────────────────────────────

func cmdSign(args []string, rpcURL string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	key := fs.String("key", "", "Private key (0x-prefixed hex)")
	message := fs.String("message", "", "Message to sign")
	fs.Parse(args)

	if *message == "" {
		fatal("Usage: aurora-wallet-cli sign --message <msg> [--key <0xhex>]")
	}

	privKey := *key
	if privKey == "" {
		secret, err := readSecret("Enter private key: ")
		if err != nil {
			fatal("read private key: %v", err)
		}
		privKey = string(secret)
	}

	if rpcURL != "" {
		client := rpcclient.New(rpcURL)
		var result rpc.SignResult
		if err := client.Call("wallet_signMessage",
			rpc.SignParam{PrivateKey: privKey, Message: *message}, &result); err != nil {
			fatal("wallet_signMessage: %v", err)
		}
		fmt.Println(result.Signature)
		return
	}

	sig, err := wallet.SignMessage(privKey, *message)
	if err != nil {
		fatal("sign: %v", err)
	}
	fmt.Println(sig)
}

// ── verify ──────────────────────────────────────────────────────────────

func cmdVerify(args []string, rpcURL string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	pubKey := fs.String("pubkey", "", "Public key (0x-prefixed hex)")
	message := fs.String("message", "", "Message that was signed")
	signature := fs.String("signature", "", "Signature (0x-prefixed 65-byte hex)")
	fs.Parse(args)

	if *pubKey == "" || *message == "" || *signature == "" {
		fatal("Usage: aurora-wallet-cli verify --pubkey <0xhex> --message <msg> --signature <0xhex>")
	}

	if rpcURL != "" {
		client := rpcclient.New(rpcURL)
		var result rpc.VerifyResult
		if err := client.Call("wallet_verifySignature",
			rpc.VerifyParam{PublicKey: *pubKey, Message: *message, Signature: *signature}, &result); err != nil {
			fatal("wallet_verifySignature: %v", err)
		}
		fmt.Println(result.Message)
		if !result.Success {
			os.Exit(1)
		}
		return
	}

	ok, status, err := wallet.VerifySignature(*pubKey, *message, *signature)
	if err != nil {
		fatal("verify: %v", err)
	}
	fmt.Println(status)
	if !ok {
		os.Exit(1)
	}
}

// ── Output helpers ──────────────────────────────────────────────────────

func printRecord(rec *wallet.Record) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		fatal("encode record: %v", err)
	}
	fmt.Println(string(out))
}

// readSecret prompts on stderr and reads a line without echoing when stdin
// is a terminal. Piped input falls back to a plain line read.
func readSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr) // newline after hidden input
		if err != nil {
			return nil, err
		}
		return secret, nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
