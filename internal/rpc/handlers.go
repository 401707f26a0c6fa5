package rpc

import (
	"errors"

	"github.com/aurora-browser/wallet-core/internal/wallet"
)

// inputErrors are deterministic bad-input failures, surfaced to the host as
// invalid-params errors rather than internal ones.
var inputErrors = []error{
	wallet.ErrInvalidDeviceID,
	wallet.ErrMnemonicWordCount,
	wallet.ErrEmptyMnemonic,
	wallet.ErrInvalidMnemonic,
	wallet.ErrInvalidPrivateKey,
	wallet.ErrInvalidPublicKey,
	wallet.ErrInvalidSignature,
	wallet.ErrInvalidSignatureLength,
}

// walletError maps a wallet error to a JSON-RPC error, preserving the
// descriptive message.
func walletError(err error) *Error {
	for _, sentinel := range inputErrors {
		if errors.Is(err, sentinel) {
			return &Error{Code: CodeInvalidParams, Message: err.Error()}
		}
	}
	return &Error{Code: CodeInternalError, Message: err.Error()}
}

// handleGenerateFromDeviceID implements wallet_generateFromDeviceId.
func (s *Server) handleGenerateFromDeviceID(req *Request) (interface{}, *Error) {
	var params DeviceIDParam
	if rpcErr := parseParams(req, &params); rpcErr != nil {
		return nil, rpcErr
	}

	rec, err := wallet.GenerateFromDeviceID(params.DeviceID, params.ChainType)
	if err != nil {
		return nil, walletError(err)
	}
	return rec, nil
}

// handleGenerateFromMnemonic implements wallet_generateFromMnemonic.
func (s *Server) handleGenerateFromMnemonic(req *Request) (interface{}, *Error) {
	var params MnemonicParam
	if rpcErr := parseParams(req, &params); rpcErr != nil {
		return nil, rpcErr
	}

	generate := wallet.GenerateFromMnemonic
	if s.strictMnemonic {
		generate = wallet.GenerateFromMnemonicStrict
	}

	rec, err := generate(params.Mnemonic, params.ChainType)
	if err != nil {
		return nil, walletError(err)
	}
	return rec, nil
}

// handleDecryptAndGenerate implements wallet_decryptAndGenerateMnemonic.
func (s *Server) handleDecryptAndGenerate(req *Request) (interface{}, *Error) {
	var params RecoverParam
	if rpcErr := parseParams(req, &params); rpcErr != nil {
		return nil, rpcErr
	}

	rec, err := wallet.DecryptAndGenerate(params.Mnemonic)
	if err != nil {
		return nil, walletError(err)
	}
	return rec, nil
}

// handleSignMessage implements wallet_signMessage.
func (s *Server) handleSignMessage(req *Request) (interface{}, *Error) {
	var params SignParam
	if rpcErr := parseParams(req, &params); rpcErr != nil {
		return nil, rpcErr
	}

	sig, err := wallet.SignMessage(params.PrivateKey, params.Message)
	if err != nil {
		return nil, walletError(err)
	}
	return SignResult{Signature: sig}, nil
}

// handleVerifySignature implements wallet_verifySignature.
func (s *Server) handleVerifySignature(req *Request) (interface{}, *Error) {
	var params VerifyParam
	if rpcErr := parseParams(req, &params); rpcErr != nil {
		return nil, rpcErr
	}

	ok, status, err := wallet.VerifySignature(params.PublicKey, params.Message, params.Signature)
	if err != nil {
		return nil, walletError(err)
	}
	return VerifyResult{Success: ok, Message: status}, nil
}
