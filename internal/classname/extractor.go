package classname

import "regexp"

// selectorPattern matches a dot followed by a run of class name characters.
// Numeric literals such as ".5" match as well.
var selectorPattern = regexp.MustCompile(`\.([a-zA-Z0-9_-]+)`)

// Extract returns every class selector name found in a stylesheet, in order of
// appearance and including duplicates. Compound selectors like ".a.b" yield each
// dotted token separately.
func Extract(content string) []string {
	matches := selectorPattern.FindAllStringSubmatch(content, -1)

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}

	return names
}

// Deduplicate keeps the first occurrence of every name and preserves order.
func Deduplicate(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result
}
