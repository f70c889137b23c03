package main

import (
	"github.com/css-class-hints/css-class-hints/internal/config"
	"github.com/spf13/pflag"
)

// registerFlags adds the server flags. Only flags set on the command line
// override the workspace configuration.
func registerFlags(flags *pflag.FlagSet) {
	defaults := config.Default()

	flags.Bool("stdio", true, "Communicate over stdin/stdout (the only supported transport)")
	flags.String("css-file-path", defaults.CSSFilePath, "Stylesheet to read class names from, relative to the workspace root")
	flags.String("extractor", defaults.Extractor, "Class name extractor: regex, lexer or tree-sitter")
	flags.Bool("deduplicate", defaults.Deduplicate, "Drop repeated class names")
	flags.Bool("watch", defaults.Watch, "Reload the stylesheet when it changes on disk")
}
