// Package extract implements the per-file record filtering and field
// extraction stage (schema trie driven) for both supported datasets, plus
// the in-memory statistics aggregated across all processed files.
package extract

import "github.com/ternarybob/corpusfield/internal/writer"

// CrossrefHeader is the column order for Crossref extraction output,
// both in single-file and sharded (organized) mode.
var CrossrefHeader = writer.CrossrefHeader

// OpenAlexHeader is the column order for OpenAlex extraction output.
var OpenAlexHeader = writer.OpenAlexHeader

// Row is one extracted field occurrence, already laid out as CSV column
// values in header order. GroupKey is the sharding key used by the
// "organize" output strategy (member id for Crossref, source id for
// OpenAlex).
type Row = writer.Row
