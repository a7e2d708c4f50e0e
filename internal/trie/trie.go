// Package trie implements the schema-aware pattern trie used to pull a
// fixed set of dotted field specifications out of an arbitrarily shaped
// JSON record in a single pass.
//
// This is deliberately narrower than a general JSONPath engine: a
// specification like "author.affiliation.name" only ever needs to fan out
// across whichever array ancestors the schema says are arrays, and it
// never needs predicates, slices, or recursive descent. Building a trie
// keyed on schema-driven "[]" descent nodes lets one traversal of the
// decoded record service every requested field at once, instead of
// re-walking the record once per specification.
package trie

import (
	"encoding/json"
	"fmt"

	"github.com/ternarybob/corpusfield/internal/schema"
)

// Match is one extracted (field_name, subfield_path, value) triple.
// FieldName is the original dotted specification the caller asked for;
// SubfieldPath is the concrete path within this record (array indices
// resolved, e.g. "author[2].affiliation[0].name"); Value is the
// stringified leaf value.
type Match struct {
	FieldName    string
	SubfieldPath string
	Value        string
}

type node struct {
	children           map[string]*node
	terminatingSpecs   []string
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Trie is an immutable, schema-built extraction index for one set of
// field specifications.
type Trie struct {
	root *node
}

// Build constructs a Trie from field specifications (as produced by
// internal/fieldspec.Parse) and a dataset schema table. When
// impliedRelationWildcard is true (Crossref only), requesting any
// "relation.X" field implicitly adds a "relation.*" pattern so the
// relation object's per-type arrays are still traversed even though the
// caller never asked for them explicitly.
func Build(specs [][]string, table schema.Table, impliedRelationWildcard bool) *Trie {
	root := newNode()

	uniqueSpecs := make([][]string, len(specs))
	copy(uniqueSpecs, specs)

	if impliedRelationWildcard {
		hasRelation := false
		hasWildcard := false
		for _, spec := range specs {
			if len(spec) > 0 && spec[0] == "relation" {
				hasRelation = true
			}
			if len(spec) == 2 && spec[0] == "relation" && spec[1] == "*" {
				hasWildcard = true
			}
		}
		if hasRelation && !hasWildcard {
			uniqueSpecs = append(uniqueSpecs, []string{"relation", "*"})
		}
	}

	for _, spec := range uniqueSpecs {
		if len(spec) == 0 {
			continue
		}

		fullPattern := joinDot(spec)
		current := root
		schemaPath := ""

		for _, part := range spec {
			if schemaPath == "" {
				schemaPath = part
			} else {
				schemaPath = schemaPath + "." + part
			}

			current = current.child(part)

			if kind, ok := table.Lookup(schemaPath); ok && kind == schema.Array {
				current = current.child("[]")
			}
		}

		current.terminatingSpecs = append(current.terminatingSpecs, fullPattern)
	}

	return &Trie{root: root}
}

func (n *node) child(key string) *node {
	c, ok := n.children[key]
	if !ok {
		c = newNode()
		n.children[key] = c
	}
	return c
}

func joinDot(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}

// Extract walks a decoded JSON value (as produced by Decode) against t,
// returning every match in a deterministic order: array elements in index
// order and object keys in the order they appeared in the source document.
func (t *Trie) Extract(value interface{}) []Match {
	var results []Match
	t.traverse(value, t.root, "", &results)
	return results
}

func (t *Trie) traverse(jsonNode interface{}, trieNode *node, currentPath string, results *[]Match) {
	if len(trieNode.terminatingSpecs) > 0 {
		valueStr := stringify(jsonNode, currentPath)
		for _, spec := range trieNode.terminatingSpecs {
			*results = append(*results, Match{
				FieldName:    spec,
				SubfieldPath: currentPath,
				Value:        valueStr,
			})
		}
	}

	switch v := jsonNode.(type) {
	case *Object:
		for _, key := range v.Keys() {
			val, _ := v.Get(key)
			newPath := key
			if currentPath != "" {
				newPath = currentPath + "." + key
			}
			if child, ok := trieNode.children[key]; ok {
				t.traverse(val, child, newPath, results)
			}
			if wildcard, ok := trieNode.children["*"]; ok {
				t.traverse(val, wildcard, newPath, results)
			}
		}
	case []interface{}:
		if arrayChild, ok := trieNode.children["[]"]; ok {
			for i, item := range v {
				newPath := fmt.Sprintf("%s[%d]", currentPath, i)
				t.traverse(item, arrayChild, newPath, results)
			}
		}
	default:
		// Scalars have nothing further beneath them; already handled above.
	}
}

func stringify(value interface{}, path string) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "[serialization error]"
		}
		return string(b)
	}
}
