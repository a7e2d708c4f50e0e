package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossrefSchema_KnownPaths(t *testing.T) {
	kind, ok := Crossref.Lookup("author")
	assert.True(t, ok)
	assert.Equal(t, Array, kind)

	kind, ok = Crossref.Lookup("author.affiliation.name")
	assert.True(t, ok)
	assert.Equal(t, Value, kind)

	kind, ok = Crossref.Lookup("relation.*")
	assert.True(t, ok)
	assert.Equal(t, Array, kind)

	_, ok = Crossref.Lookup("not-a-real-path")
	assert.False(t, ok)
}

func TestOpenAlexSchema_LocationSynthesis(t *testing.T) {
	for _, prefix := range []string{"primary_location", "best_oa_location", "locations"} {
		kind, ok := OpenAlex.Lookup(prefix)
		assert.True(t, ok, "prefix %s should be registered", prefix)
		if prefix == "locations" {
			assert.Equal(t, Array, kind)
		} else {
			assert.Equal(t, Object, kind)
		}

		kind, ok = OpenAlex.Lookup(prefix + ".source.id")
		assert.True(t, ok)
		assert.Equal(t, Value, kind)
	}

	kind, ok := OpenAlex.Lookup("authorships")
	assert.True(t, ok)
	assert.Equal(t, Array, kind)

	kind, ok = OpenAlex.Lookup("abstract_inverted_index.*")
	assert.True(t, ok)
	assert.Equal(t, Array, kind)
}
