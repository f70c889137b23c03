package protocol

import "encoding/json"

// ExecuteCommandParams represents the parameters of workspace/executeCommand
type ExecuteCommandParams struct {
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

// DidChangeConfigurationParams represents the parameters of workspace/didChangeConfiguration
type DidChangeConfigurationParams struct {
	Settings map[string]interface{} `json:"settings"`
}
