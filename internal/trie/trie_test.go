package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/corpusfield/internal/fieldspec"
	"github.com/ternarybob/corpusfield/internal/schema"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	v, err := Decode([]byte(raw))
	require.NoError(t, err)
	return v
}

// TestTrie_ArrayFanOut also pins down traversal order: given two requested
// fields under the same array element, matches must come back in source
// key order (family before given, per the object's own field order) and
// in array index order across elements, run after run, since traversal no
// longer iterates a Go map.
func TestTrie_ArrayFanOut(t *testing.T) {
	specs := fieldspec.Parse("author.family,author.given")
	tr := Build(specs, schema.Crossref, false)

	record := decode(t, `{"author":[{"family":"Smith","given":"Jane"},{"family":"Doe","given":"John"}]}`)
	matches := tr.Extract(record)

	require.Len(t, matches, 4)
	assert.Equal(t, "author[0].family", matches[0].SubfieldPath)
	assert.Equal(t, "Smith", matches[0].Value)
	assert.Equal(t, "author[0].given", matches[1].SubfieldPath)
	assert.Equal(t, "Jane", matches[1].Value)
	assert.Equal(t, "author[1].family", matches[2].SubfieldPath)
	assert.Equal(t, "Doe", matches[2].Value)
	assert.Equal(t, "author[1].given", matches[3].SubfieldPath)
	assert.Equal(t, "John", matches[3].Value)
}

func TestTrie_RelationWildcard(t *testing.T) {
	specs := fieldspec.Parse("relation.is-part-of.id")
	tr := Build(specs, schema.Crossref, true)

	record := decode(t, `{"relation":{"is-part-of":[{"id":"10.1/abc","id-type":"doi"}],"has-part":[{"id":"10.2/def","id-type":"doi"}]}}`)
	matches := tr.Extract(record)

	var found bool
	for _, m := range matches {
		if m.FieldName == "relation.*" && m.SubfieldPath == "relation.is-part-of[0]" {
			found = true
			assert.Equal(t, `{"id":"10.1/abc","id-type":"doi"}`, m.Value)
		}
	}
	assert.True(t, found, "expected the implied relation.* wildcard to fan out into relation.is-part-of")
}

func TestTrie_NumberRoundTrip(t *testing.T) {
	specs := fieldspec.Parse("volume")
	tr := Build(specs, schema.Crossref, false)

	record := decode(t, `{"volume":1.0}`)
	matches := tr.Extract(record)

	require.Len(t, matches, 1)
	assert.Equal(t, "1.0", matches[0].Value)
}

func TestTrie_NoMatchWhenFieldAbsent(t *testing.T) {
	specs := fieldspec.Parse("author.family")
	tr := Build(specs, schema.Crossref, false)

	record := decode(t, `{"title":["Something"]}`)
	matches := tr.Extract(record)
	assert.Empty(t, matches)
}
