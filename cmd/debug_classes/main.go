package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/css-class-hints/css-class-hints/internal/classname"
	"github.com/css-class-hints/css-class-hints/internal/stylesheet"
	treesitterhelper "github.com/css-class-hints/css-class-hints/internal/tree_sitter_helper"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleCount  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleError  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/debug_classes/main.go <stylesheet> [regex|lexer|tree-sitter|ast]")
		os.Exit(1)
	}

	filePath := os.Args[1]
	mode := stylesheet.ExtractorRegex
	if len(os.Args) > 2 {
		mode = os.Args[2]
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Println(styleError.Render(fmt.Sprintf("Could not read CSS file: %v", err)))
		os.Exit(1)
	}

	if mode == "ast" {
		printAST(content)
		return
	}

	extractor, err := stylesheet.NewExtractor(mode)
	if err != nil {
		fmt.Println(styleError.Render(err.Error()))
		os.Exit(1)
	}

	names := extractor.Extract(content)
	unique := classname.Deduplicate(names)

	fmt.Println(styleHeader.Render(fmt.Sprintf("Class names in %s (%s)", filePath, mode)))
	fmt.Println(styleCount.Render(fmt.Sprintf("%d names, %d unique", len(names), len(unique))))
	fmt.Println()

	for _, name := range names {
		fmt.Println(name)
	}
}

func printAST(content []byte) {
	parser, err := stylesheet.NewSCSSParser()
	if err != nil {
		fmt.Println(styleError.Render(err.Error()))
		os.Exit(1)
	}
	defer parser.Close()

	if err := writeAST(os.Stdout, parser, content); err != nil {
		fmt.Println(styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func writeAST(w io.Writer, parser *tree_sitter.Parser, content []byte) error {
	tree := parser.Parse(content, nil)
	if tree == nil {
		return errors.New("failed to parse stylesheet")
	}
	defer tree.Close()

	fmt.Fprintln(w, styleHeader.Render("Syntax tree"))
	treesitterhelper.PrintAllNodes(w, tree.RootNode(), content, "")
	return nil
}
