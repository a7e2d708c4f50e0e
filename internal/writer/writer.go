// Package writer implements the two output strategies for extracted
// field rows: a single growing CSV file, and output sharded by grouping
// key with a bounded number of concurrently open file handles.
package writer

// CrossrefHeader is the column order for Crossref extraction output,
// both in single-file and sharded (organized) mode.
var CrossrefHeader = []string{"doi", "field_name", "subfield_path", "value", "member_id", "doi_prefix"}

// OpenAlexHeader is the column order for OpenAlex extraction output.
var OpenAlexHeader = []string{"work_id", "doi", "field_name", "subfield_path", "value", "source_id", "doi_prefix", "source_file_path"}

// Row is one extracted field occurrence, already laid out as CSV column
// values in header order. GroupKey is the sharding key used by the
// "organize" output strategy (member id for Crossref, source id for
// OpenAlex).
type Row struct {
	GroupKey string
	Fields   []string
}

// Strategy is the common interface both output modes satisfy. It mirrors
// the reference extractor's OutputStrategy trait.
type Strategy interface {
	WriteBatch(batch []Row) error
	Flush() error
	FilesCreated() int
}
