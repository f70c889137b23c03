package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchClassAttribute(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		character int
		matched   bool
		attribute string
		value     string
		prefix    string
	}{
		{
			name:      "trailing space gives empty prefix",
			line:      `<div class="btn `,
			character: 16,
			matched:   true,
			attribute: "class",
			value:     "btn ",
			prefix:    "",
		},
		{
			name:      "partial class name",
			line:      `<div class="btn-pri`,
			character: 19,
			matched:   true,
			attribute: "class",
			value:     "btn-pri",
			prefix:    "btn-pri",
		},
		{
			name:      "empty value right after the quote",
			line:      `<div class="`,
			character: 12,
			matched:   true,
			attribute: "class",
			value:     "",
			prefix:    "",
		},
		{
			name:      "jsx className",
			line:      `return <span className="text-sm font`,
			character: 36,
			matched:   true,
			attribute: "className",
			value:     "text-sm font",
			prefix:    "font",
		},
		{
			name:      "cursor in the middle of the line",
			line:      `<div class="card hea">`,
			character: 20,
			matched:   true,
			attribute: "class",
			value:     "card hea",
			prefix:    "hea",
		},
		{
			name:      "closed attribute before a second one",
			line:      `<a class="x" className="y z`,
			character: 27,
			matched:   true,
			attribute: "className",
			value:     "y z",
			prefix:    "z",
		},
		{
			name:      "double spaces split into empty tokens",
			line:      `<div class="a  `,
			character: 15,
			matched:   true,
			attribute: "class",
			value:     "a  ",
			prefix:    "",
		},
		{
			name:      "no word boundary before class",
			line:      `<x-el subclass="fo`,
			character: 18,
			matched:   true,
			attribute: "class",
			value:     "fo",
			prefix:    "fo",
		},
		{
			name:      "cursor past the end is clamped",
			line:      `<div class="bt`,
			character: 200,
			matched:   true,
			attribute: "class",
			value:     "bt",
			prefix:    "bt",
		},
		{
			name:      "other attribute",
			line:      `<div id="x">`,
			character: 12,
			matched:   false,
		},
		{
			name:      "closed class attribute",
			line:      `<div class="btn">`,
			character: 17,
			matched:   false,
		},
		{
			name:      "cursor before the attribute",
			line:      `<div class="btn`,
			character: 4,
			matched:   false,
		},
		{
			name:      "single quotes are not recognized",
			line:      `<div class='btn`,
			character: 15,
			matched:   false,
		},
		{
			name:      "space around equals is not recognized",
			line:      `<div class = "btn`,
			character: 17,
			matched:   false,
		},
		{
			name:      "continuation line of a multi-line value",
			line:      `    btn-primary btn-`,
			character: 20,
			matched:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := MatchClassAttribute(tt.line, tt.character)
			assert.Equal(t, tt.matched, ok)
			if !tt.matched {
				assert.Equal(t, AttributeMatch{}, match)
				return
			}
			assert.Equal(t, tt.attribute, match.Attribute)
			assert.Equal(t, tt.value, match.Value)
			assert.Equal(t, tt.prefix, match.Prefix)
		})
	}
}

func TestLinePrefix(t *testing.T) {
	assert.Equal(t, "", LinePrefix("abc", 0))
	assert.Equal(t, "", LinePrefix("abc", -1))
	assert.Equal(t, "ab", LinePrefix("abc", 2))
	assert.Equal(t, "abc", LinePrefix("abc", 10))

	// "é" is one UTF-16 unit but two bytes
	assert.Equal(t, `<p title="é" class="`, LinePrefix(`<p title="é" class="x`, 20))

	// "😀" is a surrogate pair, two UTF-16 units
	line := `<p data-x="😀" class="bt`
	assert.Equal(t, `<p data-x="😀`, LinePrefix(line, 13))
	assert.Equal(t, `<p data-x="`, LinePrefix(line, 12))

	match, ok := MatchClassAttribute(line, 25)
	assert.True(t, ok)
	assert.Equal(t, "bt", match.Prefix)
}
