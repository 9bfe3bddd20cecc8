package entity

import "encoding/json"

// JSON-RPC envelope for the /jsonrpc endpoint. Odoo always answers
// HTTP 200; failures come back in the Error member.
type RpcRequest struct {
	JsonRpc string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  RpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type RpcParams struct {
	Service string        `json:"service"`
	Method  string        `json:"method"`
	Args    []interface{} `json:"args"`
}

type RpcResponse struct {
	JsonRpc string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RpcError       `json:"error,omitempty"`
}

type RpcError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    RpcErrorData `json:"data"`
}

type RpcErrorData struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Debug   string `json:"debug,omitempty"`
}

// Text flattens the server error into the single opaque string the
// rest of the system reports.
func (e *RpcError) Text() string {
	if e == nil {
		return ""
	}
	if e.Data.Message != "" {
		return e.Data.Message
	}
	return e.Message
}

// VersionInfo is the result of common.version.
type VersionInfo struct {
	ServerVersion string `json:"server_version"`
}
