// Package fieldspec parses the comma-separated dotted field specification
// string accepted by the "fields" config option into the per-field part
// lists consumed by internal/trie.
package fieldspec

import "strings"

// Parse splits a spec string like "author.family,author.affiliation.name"
// into [][]string{{"author","family"},{"author","affiliation","name"}}.
// Empty specs (from leading/trailing/double commas) and empty parts
// (from leading/trailing/double dots) are dropped silently.
func Parse(specs string) [][]string {
	var parsed [][]string

	for _, spec := range strings.Split(specs, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		rawParts := strings.Split(spec, ".")
		parts := make([]string, 0, len(rawParts))
		for _, part := range rawParts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			parts = append(parts, part)
		}
		if len(parts) == 0 {
			continue
		}
		parsed = append(parsed, parts)
	}

	return parsed
}
