package classname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPrefix(t *testing.T) {
	names := []string{"btn", "btn-primary", "card", "Btn-upper", "btn"}

	tests := []struct {
		name     string
		prefix   string
		expected []string
	}{
		{"empty prefix matches all", "", names},
		{"prefix keeps order and duplicates", "btn", []string{"btn", "btn-primary", "btn"}},
		{"longer prefix", "btn-pri", []string{"btn-primary"}},
		{"case sensitive", "Btn", []string{"Btn-upper"}},
		{"no match", "x", []string{}},
		{"prefix longer than names", "btn-primary-large", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchPrefix(names, tt.prefix))
		})
	}
}

func TestMatchPrefix_ResultIsExactFilter(t *testing.T) {
	names := Extract(".a { } .ab { } .b { } .abc.a { } .ba { }")

	for _, prefix := range []string{"", "a", "ab", "b", "c"} {
		result := MatchPrefix(names, prefix)

		var expected []string
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				expected = append(expected, name)
			}
		}

		assert.ElementsMatch(t, expected, result, "prefix %q", prefix)
		assert.Len(t, result, len(expected))
		for i := range expected {
			assert.Equal(t, expected[i], result[i])
		}
	}
}

func TestMatchPrefix_EmptyStore(t *testing.T) {
	assert.Empty(t, MatchPrefix(nil, "a"))
	assert.NotNil(t, MatchPrefix(nil, ""))
}
