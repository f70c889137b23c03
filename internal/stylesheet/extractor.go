package stylesheet

import (
	"fmt"

	"github.com/css-class-hints/css-class-hints/internal/classname"
)

const (
	ExtractorRegex      = "regex"
	ExtractorLexer      = "lexer"
	ExtractorTreeSitter = "tree-sitter"
)

// Extractor turns stylesheet content into class names
type Extractor interface {
	Extract(content []byte) []string
}

// NewExtractor returns the extractor registered under name. An empty name selects
// the regex extractor.
func NewExtractor(name string) (Extractor, error) {
	switch name {
	case "", ExtractorRegex:
		return RegexExtractor{}, nil
	case ExtractorLexer:
		return LexerExtractor{}, nil
	case ExtractorTreeSitter:
		return TreeSitterExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", name)
	}
}

// RegexExtractor matches every dotted run in the raw text. It is the default and
// also reports numeric literals such as ".5".
type RegexExtractor struct{}

func (RegexExtractor) Extract(content []byte) []string {
	return classname.Extract(string(content))
}
