package classname

import "strings"

// MatchPrefix returns the names starting with prefix, keeping their relative order.
// An empty prefix matches everything.
func MatchPrefix(names []string, prefix string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			result = append(result, name)
		}
	}
	return result
}
