package stylesheet

import (
	"log"

	treesitterhelper "github.com/css-class-hints/css-class-hints/internal/tree_sitter_helper"
	tree_sitter_scss "github.com/tree-sitter-grammars/tree-sitter-scss/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// NewSCSSParser creates a parser for SCSS, which also accepts plain CSS
func NewSCSSParser() (*tree_sitter.Parser, error) {
	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_scss.Language())); err != nil {
		parser.Close()
		return nil, err
	}
	return parser, nil
}

// TreeSitterExtractor parses the stylesheet and reports class selector names,
// including selectors of nested SCSS rules.
type TreeSitterExtractor struct{}

func (TreeSitterExtractor) Extract(content []byte) []string {
	// Parsers are not safe for concurrent use, loads may overlap
	parser, err := NewSCSSParser()
	if err != nil {
		log.Printf("Failed to create scss parser: %v", err)
		return []string{}
	}
	defer parser.Close()

	tree := parser.Parse(content, nil)
	if tree == nil {
		return []string{}
	}
	defer tree.Close()

	return treesitterhelper.SCSSClassNames(tree.RootNode(), content)
}
