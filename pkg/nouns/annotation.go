package nouns

import (
	"sort"
	"strings"
)

// OrderAnnotations standardizes a form annotation so that combined
// annotations are always presented in the same order. Single
// annotations pass through untouched; anything else is split on "/",
// deduplicated, sorted and rejoined. The function is idempotent.
func OrderAnnotations(annotation string) string {
	switch annotation {
	case "F", "M", "PL":
		return annotation
	}

	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Split(annotation, "/") {
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	return strings.Join(tokens, "/")
}
