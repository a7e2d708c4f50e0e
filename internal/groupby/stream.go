package groupby

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ternarybob/arbor"
)

// Row is one input record from the sorted extraction file, narrowed to the
// columns the reshape stage needs. DOI is empty for datasets (Crossref)
// whose grouping key already is the DOI.
type Row struct {
	DOI          string
	FieldName    string
	SubfieldPath string
	Value        string
}

// Columns locates the key and reshape-relevant columns within the sorted
// extraction file's header, since Crossref and OpenAlex extraction rows
// lay them out differently. DOI is -1 when the dataset's grouping key
// column already is the DOI (Crossref).
type Columns struct {
	Key          int
	DOI          int
	FieldName    int
	SubfieldPath int
	Value        int
}

// Materializer reshapes every buffered row sharing one key into zero or
// more output rows, already laid out in header order.
type Materializer func(key string, rows []Row) [][]string

// Run streams a sorted, key-grouped CSV from input (header row included),
// buffers contiguous rows sharing one key, and writes each key's
// materialized rows to w as soon as the key changes. Output rows are
// flushed via w.Flush() once at the end.
func Run(logger arbor.ILogger, input io.Reader, cols Columns, materialize Materializer, w *csv.Writer) (int, error) {
	reader := csv.NewReader(input)
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read header from group-by input: %w", err)
	}

	var currentKey string
	var hasCurrentKey bool
	var buffer []Row
	groupsProcessed := 0
	rowsWritten := 0

	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		out := materialize(currentKey, buffer)
		for _, row := range out {
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write reshaped row for key %s: %w", currentKey, err)
			}
		}
		rowsWritten += len(out)
		groupsProcessed++
		buffer = nil
		return nil
	}

	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			logger.Warn().Err(err).Int("line", lineNum).Msg("error deserializing row, skipping")
			continue
		}

		key := record[cols.Key]
		if hasCurrentKey && key != currentKey {
			if err := flush(); err != nil {
				return rowsWritten, err
			}
		}
		currentKey = key
		hasCurrentKey = true
		doi := ""
		if cols.DOI >= 0 {
			doi = record[cols.DOI]
		}
		buffer = append(buffer, Row{
			DOI:          doi,
			FieldName:    record[cols.FieldName],
			SubfieldPath: record[cols.SubfieldPath],
			Value:        record[cols.Value],
		})
	}

	if err := flush(); err != nil {
		return rowsWritten, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rowsWritten, fmt.Errorf("failed to flush group-by output: %w", err)
	}

	logger.Info().Int("groups", groupsProcessed).Int("rows_written", rowsWritten).Msg("group-by reshape complete")
	return rowsWritten, nil
}
