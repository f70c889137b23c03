package main

import (
	"bytes"
	"testing"

	"github.com/css-class-hints/css-class-hints/internal/stylesheet"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAST(t *testing.T) {
	parser, err := stylesheet.NewSCSSParser()
	require.NoError(t, err)
	defer parser.Close()

	var out bytes.Buffer
	require.NoError(t, writeAST(&out, parser, []byte(".btn { color: red; }")))

	assert.Contains(t, out.String(), "Syntax tree")
	assert.Contains(t, out.String(), "class_name")
}

func TestWriteAST_NoTree(t *testing.T) {
	// A parser without a language produces no tree
	parser := tree_sitter.NewParser()
	defer parser.Close()

	var out bytes.Buffer
	assert.EqualError(t, writeAST(&out, parser, []byte(".btn { }")), "failed to parse stylesheet")
	assert.Empty(t, out.String())
}
