package main

import (
	"fmt"
	"log"
	"os"

	"github.com/css-class-hints/css-class-hints/internal/classname"
	"github.com/css-class-hints/css-class-hints/internal/hints"
	"github.com/css-class-hints/css-class-hints/internal/lsp"
	"github.com/css-class-hints/css-class-hints/internal/lsp/completion"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" .
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "css-class-hints",
	Short: "Language server completing CSS class names in class attributes",
	Long: `Reads the class selectors of one stylesheet and suggests them while
typing class="..." or className="..." in HTML, JSX and TSX documents.
The server speaks the Language Server Protocol over stdio.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of css-class-hints",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("css-class-hints %s\n", version)
	},
}

func init() {
	registerFlags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("css-class-hints: %v", err)
	}
}

func serve(cmd *cobra.Command) error {
	store := classname.NewStore()
	server := lsp.NewServer()

	extension := hints.NewExtension(store, server, cmd.Flags())
	server.RegisterWorkspaceHandler(extension)
	server.RegisterCommandProvider(extension)
	server.RegisterCompletionProvider(completion.NewClassCompletionProvider(store, extension))

	if err := server.Start(os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("LSP server error: %w", err)
	}

	return nil
}
