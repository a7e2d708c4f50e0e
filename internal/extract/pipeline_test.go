package extract

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/corpusfield/internal/common"
	"github.com/ternarybob/corpusfield/internal/fieldspec"
	"github.com/ternarybob/corpusfield/internal/schema"
	"github.com/ternarybob/corpusfield/internal/trie"
	"github.com/ternarybob/corpusfield/internal/writer"
)

func writeGzippedJSONL(t *testing.T, path string, lines []string) {
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

func TestRun_CrossrefEndToEnd(t *testing.T) {
	dir := t.TempDir()

	fileA := filepath.Join(dir, "a.jsonl.gz")
	fileB := filepath.Join(dir, "b.jsonl.gz")
	writeGzippedJSONL(t, fileA, []string{
		`{"DOI":"10.1/a","member":"1","title":["Paper A"]}`,
		`{"DOI":"10.1/missing-member","title":["No member"]}`,
	})
	writeGzippedJSONL(t, fileB, []string{
		`{"DOI":"10.2/b","member":"2","title":["Paper B"]}`,
	})

	specs := fieldspec.Parse("title")
	tr := trie.Build(specs, schema.Crossref, true)

	outPath := filepath.Join(dir, "out.csv")
	out, err := writer.NewSingleFile(outPath, CrossrefHeader)
	require.NoError(t, err)

	agg := NewAggregator()
	logger := common.GetLogger()

	newProcessor := func(sourceFile string) LineProcessor {
		return &CrossrefProcessor{Trie: tr}
	}

	results, err := Run(logger, []string{fileA, fileB}, newProcessor, 10, 2, out, agg)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	final := agg.Finalize()
	assert.Equal(t, 2, final.UniqueKeys)
	assert.Equal(t, 2, final.FilesOK)
	assert.Equal(t, 0, final.FilesError)
	assert.Equal(t, 2, final.TotalFieldRecords)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "10.1/a,title,title[0],Paper A,1,10.1\n")
	assert.Contains(t, content, "10.2/b,title,title[0],Paper B,2,10.2\n")
}

func TestRun_MissingFileIsCountedAsError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.jsonl.gz")

	specs := fieldspec.Parse("title")
	tr := trie.Build(specs, schema.Crossref, true)

	outPath := filepath.Join(dir, "out.csv")
	out, err := writer.NewSingleFile(outPath, CrossrefHeader)
	require.NoError(t, err)

	agg := NewAggregator()
	logger := common.GetLogger()

	newProcessor := func(sourceFile string) LineProcessor {
		return &CrossrefProcessor{Trie: tr}
	}

	_, err = Run(logger, []string{missing}, newProcessor, 10, 1, out, agg)
	require.NoError(t, err)

	final := agg.Finalize()
	assert.Equal(t, 0, final.FilesOK)
	assert.Equal(t, 1, final.FilesError)
}
