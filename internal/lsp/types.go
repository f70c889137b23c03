package lsp

import (
	"context"
	"encoding/json"

	"github.com/css-class-hints/css-class-hints/internal/lsp/protocol"
)

// CompletionProvider is an interface for providing completion items
type CompletionProvider interface {
	// GetCompletions returns completion items for the given parameters. The
	// boolean reports whether the provider applies at the position at all, an
	// applicable provider may still return no items.
	GetCompletions(ctx context.Context, params *protocol.CompletionParams) ([]protocol.CompletionItem, bool)
	// GetTriggerCharacters returns the characters that trigger this completion provider
	GetTriggerCharacters() []string
}

// CommandFunc executes a command. args holds the raw request parameters and
// may be nil.
type CommandFunc func(ctx context.Context, args *json.RawMessage) (interface{}, error)

// CommandProvider contributes commands, callable as JSON-RPC methods of the same
// name or through workspace/executeCommand
type CommandProvider interface {
	GetCommands(ctx context.Context) map[string]CommandFunc
}

// WorkspaceHandler follows the lifecycle and workspace notifications of the client
type WorkspaceHandler interface {
	// Initialized is called once the client finished the initialize handshake
	Initialized(ctx context.Context, rootPath string, options map[string]interface{})
	// ConfigurationChanged is called with the payload of workspace/didChangeConfiguration
	ConfigurationChanged(ctx context.Context, settings map[string]interface{})
	// WatchedFilesChanged is called with the events of workspace/didChangeWatchedFiles
	WatchedFilesChanged(ctx context.Context, changes []protocol.FileEvent)
	// Shutdown is called when the client requests shutdown
	Shutdown(ctx context.Context)
}
