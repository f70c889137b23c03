package treesitterhelper

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// SCSSClassNamePattern matches the name part of a class selector, both in plain
// rules and in nested rules. Class names inside declarations or comments never
// produce class_name nodes.
var SCSSClassNamePattern = And(
	NodeKind("class_name"),
	ParentOfKind("class_selector", 1),
)

// SCSSClassNames returns the class selector names below root in document order
func SCSSClassNames(root *tree_sitter.Node, content []byte) []string {
	nodes := FindAll(root, SCSSClassNamePattern, content)

	names := make([]string, 0, len(nodes))
	for _, node := range nodes {
		names = append(names, node.Utf8Text(content))
	}

	return names
}
