package jsonl

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGzippedLines(t *testing.T, path string, lines []string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	for _, line := range lines {
		_, err := gz.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
}

func TestWalk_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.jsonl.gz")
	writeGzippedLines(t, path, []string{
		`{"DOI":"10.1/a"}`,
		"",
		`{"DOI":"10.1/b"}`,
		"   ",
	})

	var seen []string
	err := Walk(path, func(lineNum int, line []byte) error {
		seen = append(seen, string(line))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{`{"DOI":"10.1/a"}`, `{"DOI":"10.1/b"}`}, seen)
}

func TestWalk_MissingFile(t *testing.T) {
	err := Walk("/nonexistent/path.jsonl.gz", func(int, []byte) error { return nil })
	assert.Error(t, err)
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.jsonl.gz", "nested/b.jsonl.gz", "ignore.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte{}, 0o644))
	}

	files, err := FindFiles(dir, ".jsonl.gz")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "a.jsonl.gz")
}
