package treesitterhelper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tree_sitter_scss "github.com/tree-sitter-grammars/tree-sitter-scss/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func parseSCSS(t *testing.T, code []byte) *tree_sitter.Tree {
	t.Helper()

	parser := tree_sitter.NewParser()
	t.Cleanup(parser.Close)
	require.NoError(t, parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_scss.Language())))

	tree := parser.Parse(code, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)

	return tree
}

func TestSCSSClassNames(t *testing.T) {
	code := []byte(`.btn, .btn-primary:hover {
	margin: .5em 0;
}

/* .commented { } */
.card {
	.card-title { color: red; }
}
`)

	tree := parseSCSS(t, code)

	names := SCSSClassNames(tree.RootNode(), code)
	assert.Equal(t, []string{"btn", "btn-primary", "card", "card-title"}, names)
}

func TestSCSSClassNames_CompoundSelector(t *testing.T) {
	code := []byte(`.a.b { }`)
	tree := parseSCSS(t, code)

	assert.Equal(t, []string{"a", "b"}, SCSSClassNames(tree.RootNode(), code))
}

func TestPatternComposition(t *testing.T) {
	code := []byte(`.nav:hover { } #main { } .nav-item { }`)
	tree := parseSCSS(t, code)
	root := tree.RootNode()

	// Pseudo classes are class_name nodes too, only the parent tells them apart
	allNames := FindAll(root, NodeKind("class_name"), code)
	assert.Len(t, allNames, 3)

	pseudoPattern := And(NodeKind("class_name"), ParentOfKind("pseudo_class_selector", 1))
	pseudo := FindAll(root, pseudoPattern, code)
	require.Len(t, pseudo, 1)
	assert.Equal(t, "hover", pseudo[0].Utf8Text(code))

	assert.Equal(t, []string{"nav", "nav-item"}, SCSSClassNames(root, code))

	ruleSets := FindAll(root, And(NodeKind("rule_set"), ParentOfKind("stylesheet", 1)), code)
	assert.Len(t, ruleSets, 3)

	assert.Empty(t, FindAll(root, ParentOfKind("class_selector", 10), code))
}

func TestPrintAllNodes(t *testing.T) {
	code := []byte(`.btn { }`)
	tree := parseSCSS(t, code)

	var buf bytes.Buffer
	PrintAllNodes(&buf, tree.RootNode(), code, "")

	assert.Contains(t, buf.String(), "stylesheet")
	assert.Contains(t, buf.String(), "class_name (btn)")
}
