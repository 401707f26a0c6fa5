package rpc

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      interface{} `json:"id"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ── Param types ─────────────────────────────────────────────────────────

// DeviceIDParam is used by wallet_generateFromDeviceId.
type DeviceIDParam struct {
	DeviceID  string `json:"deviceId"`
	ChainType string `json:"chainType,omitempty"`
}

// MnemonicParam is used by wallet_generateFromMnemonic.
type MnemonicParam struct {
	Mnemonic  string `json:"mnemonic"`
	ChainType string `json:"chainType,omitempty"`
}

// RecoverParam is used by wallet_decryptAndGenerateMnemonic.
type RecoverParam struct {
	Mnemonic string `json:"mnemonic"`
}

// SignParam is used by wallet_signMessage.
type SignParam struct {
	PrivateKey string `json:"privateKey"`
	Message    string `json:"message"`
}

// VerifyParam is used by wallet_verifySignature.
type VerifyParam struct {
	PublicKey string `json:"publicKey"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// ── Result types ────────────────────────────────────────────────────────

// SignResult is returned by wallet_signMessage.
type SignResult struct {
	Signature string `json:"signature"`
}

// VerifyResult is returned by wallet_verifySignature.
type VerifyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
