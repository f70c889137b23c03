package completion

import (
	"context"

	"github.com/css-class-hints/css-class-hints/internal/lsp/protocol"
	"github.com/css-class-hints/css-class-hints/internal/markup"
)

// ClassNameDetail is shown next to every suggested class name
const ClassNameDetail = "CSS Class Name"

// ClassNameSource returns the known class names starting with prefix
type ClassNameSource interface {
	Match(prefix string) []string
}

// DocumentScope decides in which documents class names are completed
type DocumentScope interface {
	AppliesTo(uri, languageID string) bool
}

type ClassCompletionProvider struct {
	classNames ClassNameSource
	scope      DocumentScope
}

// NewClassCompletionProvider creates the provider. A nil scope completes in
// every document.
func NewClassCompletionProvider(classNames ClassNameSource, scope DocumentScope) *ClassCompletionProvider {
	return &ClassCompletionProvider{
		classNames: classNames,
		scope:      scope,
	}
}

func (p *ClassCompletionProvider) GetCompletions(ctx context.Context, params *protocol.CompletionParams) ([]protocol.CompletionItem, bool) {
	if p.scope != nil && !p.scope.AppliesTo(params.TextDocument.URI, params.LanguageID) {
		return nil, false
	}

	match, ok := markup.MatchClassAttribute(params.LineText, params.Position.Character)
	if !ok {
		return nil, false
	}

	names := p.classNames.Match(match.Prefix)

	completionItems := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		completionItems = append(completionItems, protocol.CompletionItem{
			Label:  name,
			Kind:   protocol.VariableCompletion,
			Detail: ClassNameDetail,
		})
	}

	return completionItems, true
}

func (p *ClassCompletionProvider) GetTriggerCharacters() []string {
	return []string{" ", "\"", "."}
}
