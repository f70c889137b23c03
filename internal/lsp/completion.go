package lsp

import (
	"context"

	"github.com/css-class-hints/css-class-hints/internal/lsp/protocol"
)

// completion handles textDocument/completion requests. It returns nil, which is
// sent as null, when no provider applies at the position.
func (s *Server) completion(ctx context.Context, params *protocol.CompletionParams) *protocol.CompletionList {
	if doc, ok := s.documentManager.GetDocument(params.TextDocument.URI); ok {
		params.LanguageID = doc.LanguageID
		params.LineText, _ = doc.Line(params.Position.Line)
	}

	// Collect completion items from all providers
	items := make([]protocol.CompletionItem, 0)
	applicable := false
	for _, provider := range s.completionProviders {
		providerItems, ok := provider.GetCompletions(ctx, params)
		if !ok {
			continue
		}
		applicable = true
		items = append(items, providerItems...)
	}

	if !applicable {
		return nil
	}

	// Return the completion list
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}
}
