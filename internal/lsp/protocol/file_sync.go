package protocol

// TextDocumentItem is a document transferred from the client on open
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

// DidOpenTextDocumentParams represents the parameters for a didOpen notification
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// DidChangeTextDocumentParams represents the parameters for a didChange notification
type DidChangeTextDocumentParams struct {
	TextDocument struct {
		URI     string `json:"uri"`
		Version int    `json:"version"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

// DidCloseTextDocumentParams represents the parameters for a didClose notification
type DidCloseTextDocumentParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
}

// FileEvent represents a file event
type FileEvent struct {
	URI  string `json:"uri"`
	Type int    `json:"type"`
}

// FileChangeType represents the type of file change
type FileChangeType int

const (
	// FileCreated represents a file creation event
	FileCreated FileChangeType = 1
	// FileChanged represents a file change event
	FileChanged FileChangeType = 2
	// FileDeleted represents a file deletion event
	FileDeleted FileChangeType = 3
)

// DidChangeWatchedFilesParams represents the parameters for a didChangeWatchedFiles notification
type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}
