package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharded_WritesOneFilePerGroup(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSharded(dir, []string{"doi", "value"}, 100)
	require.NoError(t, err)

	require.NoError(t, s.WriteBatch([]Row{
		{GroupKey: "member-1", Fields: []string{"10.1/a", "x"}},
		{GroupKey: "member-2", Fields: []string{"10.2/b", "y"}},
	}))
	require.NoError(t, s.Flush())

	assert.FileExists(t, filepath.Join(dir, "member-1.csv"))
	assert.FileExists(t, filepath.Join(dir, "member-2.csv"))
	assert.Equal(t, 2, s.FilesCreated())
}

func TestSharded_EmptyGroupKeyUsesUnknownShard(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSharded(dir, []string{"doi", "value"}, 100)
	require.NoError(t, err)

	require.NoError(t, s.WriteBatch([]Row{{GroupKey: "", Fields: []string{"10.1/a", "x"}}}))
	require.NoError(t, s.Flush())

	assert.FileExists(t, filepath.Join(dir, "unknown.csv"))
}

func TestSharded_LRUEvictionReopensInAppendMode(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSharded(dir, []string{"doi", "value"}, 2)
	require.NoError(t, err)

	// Open three distinct groups with a cap of 2: group "a" must be
	// evicted (least recently used) to make room for "c".
	require.NoError(t, s.WriteBatch([]Row{{GroupKey: "a", Fields: []string{"1", "x"}}}))
	require.NoError(t, s.WriteBatch([]Row{{GroupKey: "b", Fields: []string{"2", "x"}}}))
	require.NoError(t, s.WriteBatch([]Row{{GroupKey: "c", Fields: []string{"3", "x"}}}))
	assert.Len(t, s.writers, 2)
	_, stillOpenA := s.writers["a"]
	assert.False(t, stillOpenA)

	// Writing to "a" again must reopen in append mode, not re-write the header.
	require.NoError(t, s.WriteBatch([]Row{{GroupKey: "a", Fields: []string{"4", "y"}}}))
	require.NoError(t, s.Flush())

	data, err := os.ReadFile(filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	assert.Equal(t, "doi,value\n1,x\n4,y\n", string(data))
	assert.Equal(t, 3, s.FilesCreated())
}
