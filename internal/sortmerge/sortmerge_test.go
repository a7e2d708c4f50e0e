package sortmerge

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/corpusfield/internal/common"
)

func buildUnsortedCSV(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("doi,field_name,value\n")
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "10.1/%05d,title,Paper %d\n", i, i)
	}
	return b.String()
}

func TestSortCSV_SortsAcrossMultipleChunks(t *testing.T) {
	dir := t.TempDir()
	input := buildUnsortedCSV(t, 250)
	outputPath := filepath.Join(dir, "sorted.csv")

	logger := common.GetLogger()
	opts := Options{
		Header:    []string{"doi", "field_name", "value"},
		KeyIndex:  0,
		ChunkSize: 50,
		Threads:   4,
		TempDir:   dir,
	}

	err := SortCSV(logger, strings.NewReader(input), outputPath, opts)
	require.NoError(t, err)

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, opts.Header, header)

	var keys []string
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		keys = append(keys, row[0])
	}

	require.Len(t, keys, 250)
	for i := 1; i < len(keys); i++ {
		assert.LessOrEqual(t, keys[i-1], keys[i])
	}
	assert.Equal(t, "10.1/00000", keys[0])
	assert.Equal(t, "10.1/00249", keys[len(keys)-1])
}

func TestSortCSV_ForcesMultiplePassesWhenChunksExceedMergeWidth(t *testing.T) {
	dir := t.TempDir()
	input := buildUnsortedCSV(t, 3*(MergeWidth+10))
	outputPath := filepath.Join(dir, "sorted.csv")

	logger := common.GetLogger()
	opts := Options{
		Header:    []string{"doi", "field_name", "value"},
		KeyIndex:  0,
		ChunkSize: 3,
		Threads:   8,
		TempDir:   dir,
	}

	err := SortCSV(logger, strings.NewReader(input), outputPath, opts)
	require.NoError(t, err)

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	_, err = r.Read()
	require.NoError(t, err)

	count := 0
	var prev string
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		if count > 0 {
			assert.LessOrEqual(t, prev, row[0])
		}
		prev = row[0]
		count++
	}
	assert.Equal(t, 3*(MergeWidth+10), count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "scratch directory must be cleaned up, leaving only the sorted output")
	assert.Equal(t, "sorted.csv", entries[0].Name())
}

func TestSortCSV_EmptyInputProducesHeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "sorted.csv")

	logger := common.GetLogger()
	opts := Options{
		Header:    []string{"doi", "field_name", "value"},
		KeyIndex:  0,
		ChunkSize: 50,
		Threads:   2,
		TempDir:   dir,
	}

	err := SortCSV(logger, strings.NewReader("doi,field_name,value\n"), outputPath, opts)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "doi,field_name,value\n", string(data))
}
