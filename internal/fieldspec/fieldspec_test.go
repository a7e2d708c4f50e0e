package fieldspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	got := Parse("author.family, author.affiliation.name ,,title")
	want := [][]string{
		{"author", "family"},
		{"author", "affiliation", "name"},
		{"title"},
	}
	assert.Equal(t, want, got)
}

func TestParse_EmptyAndMalformed(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Nil(t, Parse(",,,"))
	assert.Equal(t, [][]string{{"a"}}, Parse("..a.."))
}
