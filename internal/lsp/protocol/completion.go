package protocol

// CompletionItemKind is the kind of a completion entry
type CompletionItemKind int

const (
	// VariableCompletion is the kind used for class name suggestions
	VariableCompletion CompletionItemKind = 6
)

// CompletionTriggerKind describes how a completion was triggered
type CompletionTriggerKind int

const (
	// Invoked means completion was triggered by typing an identifier or manually
	Invoked CompletionTriggerKind = 1
	// TriggerCharacter means completion was triggered by a trigger character
	TriggerCharacter CompletionTriggerKind = 2
	// TriggerForIncompleteCompletions means completion was re-triggered
	TriggerForIncompleteCompletions CompletionTriggerKind = 3
)

// CompletionList represents a list of completion items
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// InitializeParams represents the parameters for the 'initialize' request
type InitializeParams struct {
	RootPath              string                 `json:"rootPath,omitempty"`
	RootURI               string                 `json:"rootUri,omitempty"`
	WorkspaceFolders      []WorkspaceFolder      `json:"workspaceFolders,omitempty"`
	InitializationOptions map[string]interface{} `json:"initializationOptions,omitempty"`
}

// WorkspaceFolder represents a workspace folder
type WorkspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Position is a zero based line and UTF-16 character offset
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// CompletionContext contains additional information about how completion was triggered
type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter string                `json:"triggerCharacter,omitempty"`
}

// CompletionParams represents the parameters for a completion request
type CompletionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position Position           `json:"position"`
	Context  *CompletionContext `json:"context,omitempty"`

	// LanguageID of the open document, filled in by the server
	LanguageID string `json:"-"`
	// LineText is the full text of the line at Position, filled in by the server
	LineText string `json:"-"`
}

// CompletionItem represents a completion item
type CompletionItem struct {
	Label  string             `json:"label"`
	Kind   CompletionItemKind `json:"kind"`
	Detail string             `json:"detail,omitempty"`
}
