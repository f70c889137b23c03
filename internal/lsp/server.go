package lsp

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/css-class-hints/css-class-hints/internal/lsp/protocol"
	"github.com/sourcegraph/jsonrpc2"
)

// Server represents the LSP server
type Server struct {
	rootPath              string
	initializationOptions map[string]interface{}
	conn                  *jsonrpc2.Conn
	connMu                sync.RWMutex
	completionProviders   []CompletionProvider
	workspaceHandlers     []WorkspaceHandler
	commands              map[string]CommandFunc
	documentManager       *DocumentManager
}

// NewServer creates a new LSP server
func NewServer() *Server {
	return &Server{
		completionProviders: make([]CompletionProvider, 0),
		workspaceHandlers:   make([]WorkspaceHandler, 0),
		commands:            make(map[string]CommandFunc),
		documentManager:     NewDocumentManager(),
	}
}

// RegisterCompletionProvider registers a completion provider with the server
func (s *Server) RegisterCompletionProvider(provider CompletionProvider) {
	s.completionProviders = append(s.completionProviders, provider)
}

// RegisterCommandProvider registers the commands of provider with the server
func (s *Server) RegisterCommandProvider(provider CommandProvider) {
	for name, command := range provider.GetCommands(context.Background()) {
		s.commands[name] = command
	}
}

// RegisterWorkspaceHandler registers a handler for lifecycle and workspace notifications
func (s *Server) RegisterWorkspaceHandler(handler WorkspaceHandler) {
	s.workspaceHandlers = append(s.workspaceHandlers, handler)
}

// RootPath returns the workspace root sent by the client
func (s *Server) RootPath() string {
	return s.rootPath
}

func (s *Server) Start(in io.Reader, out io.Writer) error {
	// Create a new JSON-RPC connection
	stream := jsonrpc2.NewBufferedStream(rwc{in, out}, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(context.Background(), stream, jsonrpc2.HandlerWithError(s.handle))
	s.setConn(conn)

	// Wait for the connection to close
	<-conn.DisconnectNotify()
	return nil
}

func (s *Server) setConn(conn *jsonrpc2.Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conn == nil {
		s.conn = conn
	}
}

func (s *Server) getConn() *jsonrpc2.Conn {
	s.connMu.RLock()
	defer s.connMu.RUnlock()
	return s.conn
}

// rwc combines a reader and writer into a single ReadWriteCloser
type rwc struct {
	io.Reader
	io.Writer
}

// Close implements io.Closer
func (rwc) Close() error {
	return nil
}

// ShowInfo shows an information message in the client
func (s *Server) ShowInfo(ctx context.Context, message string) {
	s.showMessage(ctx, protocol.InfoMessage, message)
}

// ShowError shows an error message in the client
func (s *Server) ShowError(ctx context.Context, message string) {
	s.showMessage(ctx, protocol.ErrorMessage, message)
}

func (s *Server) showMessage(ctx context.Context, messageType protocol.MessageType, message string) {
	log.Println(message)

	conn := s.getConn()
	if conn == nil {
		return
	}

	if err := conn.Notify(ctx, "window/showMessage", protocol.ShowMessageParams{
		Type:    messageType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to send window/showMessage: %v", err)
	}
}

// handle processes incoming JSON-RPC requests and notifications
func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	// Messages may arrive before Start stored the connection
	s.setConn(conn)

	// Handle exit notification after shutdown
	if req.Method == "exit" {
		log.Println("Received exit notification, exiting")
		if err := conn.Close(); err != nil {
			log.Printf("error closing connection: %v", err)
		}
		return nil, nil
	}

	switch req.Method {
	case "initialize":
		var params protocol.InitializeParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeParseError, Message: err.Error()}
		}
		return s.initialize(ctx, &params), nil

	case "initialized":
		for _, handler := range s.workspaceHandlers {
			handler.Initialized(ctx, s.rootPath, s.initializationOptions)
		}
		return nil, nil

	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		s.documentManager.OpenDocument(params.TextDocument.URI, params.TextDocument.LanguageID, params.TextDocument.Text, params.TextDocument.Version)
		return nil, nil

	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		// Full sync, the last change holds the whole document
		if len(params.ContentChanges) > 0 {
			s.documentManager.UpdateDocument(params.TextDocument.URI, params.ContentChanges[len(params.ContentChanges)-1].Text, params.TextDocument.Version)
		}
		return nil, nil

	case "textDocument/didClose":
		var params protocol.DidCloseTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		s.documentManager.CloseDocument(params.TextDocument.URI)
		return nil, nil

	case "textDocument/completion":
		var params protocol.CompletionParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
		}
		return s.completion(ctx, &params), nil

	case "workspace/didChangeConfiguration":
		var params protocol.DidChangeConfigurationParams
		if err := unmarshalParams(req, &params); err != nil {
			log.Printf("Ignoring configuration change: %v", err)
			return nil, nil
		}
		for _, handler := range s.workspaceHandlers {
			handler.ConfigurationChanged(ctx, params.Settings)
		}
		return nil, nil

	case "workspace/didChangeWatchedFiles":
		var params protocol.DidChangeWatchedFilesParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		for _, handler := range s.workspaceHandlers {
			handler.WatchedFilesChanged(ctx, params.Changes)
		}
		return nil, nil

	case "workspace/executeCommand":
		var params protocol.ExecuteCommandParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
		}
		command, ok := s.commands[params.Command]
		if !ok {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "Unknown command: " + params.Command}
		}
		var args *json.RawMessage
		if len(params.Arguments) > 0 {
			args = &params.Arguments[0]
		}
		return command(ctx, args)

	case "shutdown":
		for _, handler := range s.workspaceHandlers {
			handler.Shutdown(ctx)
		}
		s.documentManager.Close()

		log.Println("Received shutdown request, waiting for exit notification")
		return nil, nil

	default:
		if command, ok := s.commands[req.Method]; ok {
			return command(ctx, req.Params)
		}

		// Check if this is a notification (no ID)
		if req.Notif {
			// This is a notification, no response needed
			return nil, nil
		}
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "Method not implemented: " + req.Method}
	}
}

func unmarshalParams(req *jsonrpc2.Request, v interface{}) error {
	if req.Params == nil {
		return nil
	}
	return json.Unmarshal(*req.Params, v)
}

// initialize handles the LSP initialize request
func (s *Server) initialize(ctx context.Context, params *protocol.InitializeParams) interface{} {
	// Extract root path from params
	s.extractRootPath(params)
	s.initializationOptions = params.InitializationOptions

	return map[string]interface{}{
		"capabilities": map[string]interface{}{
			"textDocumentSync": map[string]interface{}{
				"openClose": true,
				"change":    1, // Full sync
			},
			"completionProvider": map[string]interface{}{
				"triggerCharacters": s.collectTriggerCharacters(),
			},
			"executeCommandProvider": map[string]interface{}{
				"commands": s.commandNames(),
			},
		},
		"serverInfo": map[string]interface{}{
			"name": "css-class-hints",
		},
	}
}

// extractRootPath extracts the root path from the initialize params
func (s *Server) extractRootPath(params *protocol.InitializeParams) {
	// Try to get from RootURI
	if params.RootURI != "" {
		s.rootPath = URIToPath(params.RootURI)
		return
	}

	// Try to get from RootPath
	if params.RootPath != "" {
		s.rootPath = params.RootPath
		return
	}

	// Try to get from WorkspaceFolders
	if len(params.WorkspaceFolders) > 0 {
		s.rootPath = URIToPath(params.WorkspaceFolders[0].URI)
		return
	}

	// Fall back to current directory
	s.rootPath, _ = os.Getwd()
}

// collectTriggerCharacters collects all trigger characters from registered providers
func (s *Server) collectTriggerCharacters() []string {
	// Use a map to deduplicate trigger characters
	triggerCharsMap := make(map[string]bool)

	for _, provider := range s.completionProviders {
		for _, char := range provider.GetTriggerCharacters() {
			triggerCharsMap[char] = true
		}
	}

	// Convert map keys to slice
	triggerChars := make([]string, 0, len(triggerCharsMap))
	for char := range triggerCharsMap {
		triggerChars = append(triggerChars, char)
	}
	sort.Strings(triggerChars)

	return triggerChars
}

func (s *Server) commandNames() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) DocumentManager() *DocumentManager {
	return s.documentManager
}
