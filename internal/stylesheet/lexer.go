package stylesheet

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// LexerExtractor tokenizes the stylesheet and reports identifiers directly
// following a "." delimiter. Numbers, comments, strings and urls are separate
// tokens and never produce class names.
type LexerExtractor struct{}

func (LexerExtractor) Extract(content []byte) []string {
	names := []string{}
	lexer := css.NewLexer(parse.NewInputBytes(content))

	afterDot := false
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		if afterDot && tt == css.IdentToken {
			names = append(names, string(text))
		}

		afterDot = tt == css.DelimToken && len(text) == 1 && text[0] == '.'
	}

	return names
}
