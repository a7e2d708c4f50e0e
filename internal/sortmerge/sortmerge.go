// Package sortmerge implements an external (disk-backed) sort over a CSV
// stream keyed by one column, used to bring extracted field rows into key
// order before the streaming group-by stage reshapes them. It mirrors the
// reference pipeline's two-phase design: partition the input into sorted,
// compressed chunks, then repeatedly k-way merge chunks (bounded by
// MergeWidth per pass) until only the final sorted file remains.
package sortmerge

import (
	"path/filepath"

	"github.com/ternarybob/corpusfield/internal/common"
)

// MergeWidth caps how many chunks a single merge pass combines. When more
// chunks than this survive phase 1, merging proceeds in additional passes
// so no pass ever needs more than MergeWidth simultaneously open readers.
const MergeWidth = 100

// Record pairs a CSV row with its sort key: Key is the value of the column
// the run is sorted on (compared lexicographically, matching the reference
// sort's plain string ordering), Fields is the full row in header order.
// The chunk and merge code in this package carries rows as []string and
// does not use this type.
type Record struct {
	Key    string
	Fields []string
}

// Options configures one external sort run.
type Options struct {
	Header    []string // CSV header, shared by every chunk and the final output
	KeyIndex  int      // index into Fields/header of the sort key column
	ChunkSize int       // rows per chunk before it's sorted and spilled to disk
	Threads   int       // chunk sort/compress worker concurrency
	TempDir   string    // parent scratch directory; a run-scoped subdirectory is created beneath it
}

func (o Options) normalized() Options {
	if o.ChunkSize < 1 {
		o.ChunkSize = 500_000
	}
	if o.Threads < 1 {
		o.Threads = 1
	}
	return o
}

func runScratchDir(tempDir string) string {
	return filepath.Join(tempDir, common.NewRunID())
}
