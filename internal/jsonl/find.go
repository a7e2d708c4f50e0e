package jsonl

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFiles walks dir recursively and returns every file whose name
// matches suffix (".jsonl.gz" for Crossref input, ".gz" for OpenAlex
// input), sorted for deterministic processing order.
func FindFiles(dir, suffix string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
