package lsp

import (
	"net/url"
	"strings"
	"sync"
)

// TextDocument represents a document open in the editor
type TextDocument struct {
	URI        string
	LanguageID string
	Text       []byte
	Version    int
}

// Line returns the text of the zero based line without its line terminator
func (d *TextDocument) Line(line int) (string, bool) {
	if line < 0 {
		return "", false
	}

	text := string(d.Text)
	for i := 0; i < line; i++ {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			return "", false
		}
		text = text[idx+1:]
	}

	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSuffix(text, "\r"), true
}

// DocumentManager manages text documents
type DocumentManager struct {
	documents map[string]*TextDocument
	mu        sync.RWMutex
}

// NewDocumentManager creates a new document manager
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*TextDocument),
	}
}

// OpenDocument adds or replaces a document
func (m *DocumentManager) OpenDocument(uri, languageID, text string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents[uri] = &TextDocument{
		URI:        uri,
		LanguageID: languageID,
		Text:       []byte(text),
		Version:    version,
	}
}

// UpdateDocument updates an existing document
func (m *DocumentManager) UpdateDocument(uri string, text string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc, ok := m.documents[uri]; ok {
		// Documents are replaced, readers may still hold the old one
		m.documents[uri] = &TextDocument{
			URI:        uri,
			LanguageID: doc.LanguageID,
			Text:       []byte(text),
			Version:    version,
		}
		return
	}

	// If the document doesn't exist, create it
	m.documents[uri] = &TextDocument{
		URI:     uri,
		Text:    []byte(text),
		Version: version,
	}
}

// CloseDocument removes a document
func (m *DocumentManager) CloseDocument(uri string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.documents, uri)
}

// GetDocument returns a document by URI
func (m *DocumentManager) GetDocument(uri string) (*TextDocument, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[uri]
	return doc, ok
}

// GetDocumentText returns the text of a document by URI
func (m *DocumentManager) GetDocumentText(uri string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if doc, ok := m.documents[uri]; ok {
		return doc.Text, true
	}
	return nil, false
}

// Close drops all documents
func (m *DocumentManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents = make(map[string]*TextDocument)
}

// URIToPath converts a file URI into a file system path. Other strings are
// returned unchanged.
func URIToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}

	return parsed.Path
}
