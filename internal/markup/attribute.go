// Package markup detects class attribute values at the cursor in markup-like lines.
package markup

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// classAttributePattern matches an unterminated class or className attribute value
// that runs up to the end of the tested text.
var classAttributePattern = regexp.MustCompile(`(class|className)="([^"]*)$`)

// AttributeMatch describes the class attribute the cursor is in
type AttributeMatch struct {
	// Attribute is either "class" or "className"
	Attribute string
	// Value is the attribute value between the opening quote and the cursor
	Value string
	// Prefix is the last space separated token of Value
	Prefix string
}

// MatchClassAttribute checks whether the cursor at character (an LSP position
// character, counted in UTF-16 code units) sits inside an open class attribute
// value on this line. Attribute values spanning several lines are not detected.
func MatchClassAttribute(line string, character int) (AttributeMatch, bool) {
	match := classAttributePattern.FindStringSubmatch(LinePrefix(line, character))
	if match == nil {
		return AttributeMatch{}, false
	}

	value := match[2]
	tokens := strings.Split(value, " ")

	return AttributeMatch{
		Attribute: match[1],
		Value:     value,
		Prefix:    tokens[len(tokens)-1],
	}, true
}

// LinePrefix returns the part of line before the given UTF-16 offset. Offsets past
// the end of the line are clamped.
func LinePrefix(line string, character int) string {
	if character <= 0 {
		return ""
	}

	units := 0
	for i, r := range line {
		width := utf16.RuneLen(r)
		if width < 1 {
			width = 1
		}
		if units+width > character {
			return line[:i]
		}
		units += width
	}

	return line
}
