package extract

import (
	"sort"
	"sync"
)

// FileStats accumulates counters for a single input file. A FileStats is
// built up single-threaded while one worker processes one file, then
// merged into an Aggregator once that worker's parallel phase is done -
// mirroring the reference extractor's "rayon par_iter().collect() then
// serial aggregate_file_stats loop" split between parallel extraction and
// serial bookkeeping.
type FileStats struct {
	UniqueKeys           map[string]struct{} // unique DOI (crossref) or work_id (openalex)
	GroupCounts          map[string]int      // member_id / source_id -> extracted field count
	PrefixCounts         map[string]int      // doi_prefix -> extracted field count
	FieldCounts          map[string]int      // field_name -> occurrence count
	TotalFieldsExtracted int
	RecordsMissingGroup  int // missing member (crossref) / missing work_id (openalex)
	RecordsMissingDOI    int
	RecordsFilteredOut   int
	JSONParsingErrors    int
	LinesProcessed       int
	RecordsProcessed     int
}

// NewFileStats returns a zero-valued, ready-to-use FileStats.
func NewFileStats() *FileStats {
	return &FileStats{
		UniqueKeys:   make(map[string]struct{}),
		GroupCounts:  make(map[string]int),
		PrefixCounts: make(map[string]int),
		FieldCounts:  make(map[string]int),
	}
}

// Aggregator merges FileStats from every processed file into run-wide
// totals. Run writes to it only from the serial aggregation phase after
// all parallel file-processing workers have returned; every method still
// takes the internal mutex, so concurrent callers are safe as well.
type Aggregator struct {
	mu sync.Mutex

	uniqueKeys   map[string]struct{}
	uniqueGroups map[string]int
	uniquePrefix map[string]int
	fieldCounts  map[string]int

	totalFieldRecords int
	filesOK           int
	filesError        int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		uniqueKeys:   make(map[string]struct{}),
		uniqueGroups: make(map[string]int),
		uniquePrefix: make(map[string]int),
		fieldCounts:  make(map[string]int),
	}
}

// MergeFile folds one file's stats into the aggregator and marks the file
// as successfully processed.
func (a *Aggregator) MergeFile(fs *FileStats) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for k := range fs.UniqueKeys {
		a.uniqueKeys[k] = struct{}{}
	}
	for k, v := range fs.GroupCounts {
		a.uniqueGroups[k] += v
	}
	for k, v := range fs.PrefixCounts {
		a.uniquePrefix[k] += v
	}
	for k, v := range fs.FieldCounts {
		a.fieldCounts[k] += v
	}
	a.totalFieldRecords += fs.TotalFieldsExtracted
	a.filesOK++
}

// MarkFileError records that a file could not be processed at all (e.g.
// failed to open or decompress).
func (a *Aggregator) MarkFileError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filesError++
}

// FinalStats is the terminal, read-only snapshot of everything the
// Aggregator tracked, suitable for the end-of-run summary log.
type FinalStats struct {
	TotalFieldRecords int
	UniqueKeys        int
	UniqueGroups      int
	UniquePrefixes    int
	FilesOK           int
	FilesError        int
	TopFields         []FieldCount
}

// FieldCount pairs a field name with its extracted occurrence count.
type FieldCount struct {
	Field string
	Count int
}

// Finalize snapshots the current totals, sorted most-frequent field first.
func (a *Aggregator) Finalize() FinalStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	fields := make([]FieldCount, 0, len(a.fieldCounts))
	for field, count := range a.fieldCounts {
		fields = append(fields, FieldCount{Field: field, Count: count})
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].Count != fields[j].Count {
			return fields[i].Count > fields[j].Count
		}
		return fields[i].Field < fields[j].Field
	})

	return FinalStats{
		TotalFieldRecords: a.totalFieldRecords,
		UniqueKeys:        len(a.uniqueKeys),
		UniqueGroups:      len(a.uniqueGroups),
		UniquePrefixes:    len(a.uniquePrefix),
		FilesOK:           a.filesOK,
		FilesError:        a.filesError,
		TopFields:         fields,
	}
}
