package treesitterhelper

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Pattern defines a pattern that can be matched against a tree-sitter node
type Pattern interface {
	Matches(node *tree_sitter.Node, content []byte) bool
}

// Chain multiple patterns using AND logic
func And(patterns ...Pattern) Pattern {
	return &andPattern{patterns: patterns}
}

type andPattern struct {
	patterns []Pattern
}

func (p *andPattern) Matches(node *tree_sitter.Node, content []byte) bool {
	for _, pattern := range p.patterns {
		if !pattern.Matches(node, content) {
			return false
		}
	}
	return true
}

// Match a node's kind
func NodeKind(kind string) Pattern {
	return &nodeKindPattern{kind: kind}
}

type nodeKindPattern struct {
	kind string
}

func (p *nodeKindPattern) Matches(node *tree_sitter.Node, content []byte) bool {
	return node.Kind() == p.kind
}

// Match a parent node at a specific level
func ParentOfKind(kind string, level int) Pattern {
	return &parentOfKindPattern{kind: kind, level: level}
}

type parentOfKindPattern struct {
	kind  string
	level int
}

func (p *parentOfKindPattern) Matches(node *tree_sitter.Node, content []byte) bool {
	parent := node
	for i := 0; i < p.level && parent != nil; i++ {
		parent = parent.Parent()
	}
	return parent != nil && parent.Kind() == p.kind
}

// FindAll returns every node matching the pattern in document order
func FindAll(root *tree_sitter.Node, pattern Pattern, content []byte) []*tree_sitter.Node {
	var results []*tree_sitter.Node

	var visit func(node *tree_sitter.Node)
	visit = func(node *tree_sitter.Node) {
		if pattern.Matches(node, content) {
			results = append(results, node)
		}

		for i := uint(0); i < node.NamedChildCount(); i++ {
			visit(node.NamedChild(i))
		}
	}

	visit(root)
	return results
}
