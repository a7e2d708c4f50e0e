package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/corpusfield/internal/trie"
)

// CrossrefFilter holds the optional exact-match filters applied before a
// Crossref record is considered for extraction.
type CrossrefFilter struct {
	Member    string // empty = no filter
	DOIPrefix string // empty = no filter
}

// CrossrefProcessor extracts field occurrences from one Crossref JSONL.gz
// file's decoded records, applying filters and the missing-member /
// missing-doi rejection rules in the same order as the reference
// extractor: filters first, then reject missing doi, then reject
// missing member.
type CrossrefProcessor struct {
	Trie   *trie.Trie
	Filter CrossrefFilter
}

// ProcessLine decodes one JSONL line and, if the record survives
// filtering, returns the rows it yields plus the per-line accounting
// needed by FileStats. A nil rows slice with a nil error means the line
// was legitimately skipped (filtered, missing key fields, or no fields
// matched the trie) rather than a deserialize failure.
func (p *CrossrefProcessor) ProcessLine(line []byte, stats *FileStats) ([]Row, error) {
	decoded, err := trie.Decode(line)
	if err != nil {
		stats.JSONParsingErrors++
		return nil, err
	}
	record, ok := decoded.(*trie.Object)
	if !ok {
		stats.JSONParsingErrors++
		return nil, fmt.Errorf("top-level JSON value is not an object")
	}
	stats.RecordsProcessed++

	memberID, hasMember := extractMemberID(record)
	doi, hasDOI := extractStringField(record, "DOI")
	doiPrefix := extractCrossrefDOIPrefix(record, doi, hasDOI)

	if p.Filter.Member != "" {
		if !hasMember || memberID != p.Filter.Member {
			stats.RecordsFilteredOut++
			return nil, nil
		}
	}
	if p.Filter.DOIPrefix != "" {
		if doiPrefix != p.Filter.DOIPrefix {
			stats.RecordsFilteredOut++
			return nil, nil
		}
	}

	if !hasDOI {
		stats.RecordsMissingDOI++
		return nil, nil
	}
	if !hasMember {
		stats.RecordsMissingGroup++
		return nil, nil
	}

	matches := p.Trie.Extract(record)
	if len(matches) == 0 {
		return nil, nil
	}

	stats.UniqueKeys[doi] = struct{}{}
	stats.GroupCounts[memberID] += len(matches)
	stats.PrefixCounts[doiPrefix] += len(matches)

	rows := make([]Row, 0, len(matches))
	for _, m := range matches {
		stats.FieldCounts[m.FieldName]++
		stats.TotalFieldsExtracted++
		rows = append(rows, Row{
			GroupKey: memberID,
			Fields:   []string{doi, m.FieldName, m.SubfieldPath, m.Value, memberID, doiPrefix},
		})
	}
	return rows, nil
}

func extractMemberID(record *trie.Object) (string, bool) {
	v, ok := record.Get("member")
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	default:
		return "", false
	}
}

func extractStringField(record *trie.Object, key string) (string, bool) {
	v, ok := record.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func extractCrossrefDOIPrefix(record *trie.Object, doi string, hasDOI bool) string {
	if prefix, ok := extractStringField(record, "prefix"); ok {
		return prefix
	}
	if hasDOI {
		if idx := strings.Index(doi, "/"); idx >= 0 {
			return doi[:idx]
		}
	}
	return ""
}
