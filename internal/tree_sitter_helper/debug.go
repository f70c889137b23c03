package treesitterhelper

import (
	"fmt"
	"io"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// PrintAllNodes writes an indented dump of the syntax tree below node
func PrintAllNodes(w io.Writer, node *tree_sitter.Node, content []byte, indent string) {
	_, _ = fmt.Fprintf(w, "%s%s (%s)\n", indent, node.Kind(), node.Utf8Text(content))

	for i := uint(0); i < node.ChildCount(); i++ {
		PrintAllNodes(w, node.Child(i), content, indent+"  ")
	}
}
