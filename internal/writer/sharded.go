package writer

import (
	"container/list"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Sharded writes rows into one CSV file per grouping key under a base
// directory, keeping at most maxOpenFiles file handles open at once. When
// the cap is reached the least-recently-used file is flushed and closed;
// reopening it later appends rather than rewriting the header, matching
// the reference extractor's OrganizedOutput.
type Sharded struct {
	baseDir      string
	header       []string
	maxOpenFiles int

	writers      map[string]*csv.Writer
	files        map[string]*os.File
	createdPaths map[string]struct{}

	lru      *list.List
	lruElems map[string]*list.Element
}

// NewSharded creates the base output directory and returns a ready
// Sharded writer. maxOpenFiles is clamped to at least 1.
func NewSharded(baseDir string, header []string, maxOpenFiles int) (*Sharded, error) {
	if info, err := os.Stat(baseDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("output path for organized output must be a directory: %s", baseDir)
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base output directory %s: %w", baseDir, err)
	}
	if maxOpenFiles < 1 {
		maxOpenFiles = 1
	}

	return &Sharded{
		baseDir:      baseDir,
		header:       header,
		maxOpenFiles: maxOpenFiles,
		writers:      make(map[string]*csv.Writer),
		files:        make(map[string]*os.File),
		createdPaths: make(map[string]struct{}),
		lru:          list.New(),
		lruElems:     make(map[string]*list.Element),
	}, nil
}

func shardKey(groupKey string) string {
	if groupKey == "" {
		return "unknown"
	}
	return groupKey
}

// WriteBatch groups batch by GroupKey and appends each group's rows to
// its shard file, opening or reusing a writer as needed.
func (s *Sharded) WriteBatch(batch []Row) error {
	if len(batch) == 0 {
		return nil
	}

	grouped := make(map[string][]Row)
	for _, row := range batch {
		key := shardKey(row.GroupKey)
		grouped[key] = append(grouped[key], row)
	}

	for key, rows := range grouped {
		w, err := s.getWriter(key)
		if err != nil {
			return fmt.Errorf("failed to get writer for group %s: %w", key, err)
		}
		for _, row := range rows {
			if err := w.Write(row.Fields); err != nil {
				return fmt.Errorf("failed to write row for group %s: %w", key, err)
			}
		}
	}
	return nil
}

func (s *Sharded) getWriter(key string) (*csv.Writer, error) {
	if w, ok := s.writers[key]; ok {
		s.touch(key)
		return w, nil
	}

	for len(s.writers) >= s.maxOpenFiles {
		oldest := s.lru.Back()
		if oldest == nil {
			break
		}
		lruKey := oldest.Value.(string)
		s.lru.Remove(oldest)
		delete(s.lruElems, lruKey)

		if w, ok := s.writers[lruKey]; ok {
			w.Flush()
			_ = w.Error()
			delete(s.writers, lruKey)
		}
		if f, ok := s.files[lruKey]; ok {
			f.Close()
			delete(s.files, lruKey)
		}
	}

	path := filepath.Join(s.baseDir, fmt.Sprintf("%s.csv", key))
	_, alreadyCreated := s.createdPaths[path]

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open/create output file for group %s: %w", key, err)
	}

	w := csv.NewWriter(f)
	if !alreadyCreated {
		if err := w.Write(s.header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to flush header to %s: %w", path, err)
		}
		s.createdPaths[path] = struct{}{}
	}

	s.writers[key] = w
	s.files[key] = f
	s.touch(key)

	return w, nil
}

func (s *Sharded) touch(key string) {
	if elem, ok := s.lruElems[key]; ok {
		s.lru.MoveToFront(elem)
		return
	}
	s.lruElems[key] = s.lru.PushFront(key)
}

// Flush flushes and closes every currently open shard file.
func (s *Sharded) Flush() error {
	var firstErr error
	for key, w := range s.writers {
		w.Flush()
		if err := w.Error(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to flush file for group %s: %w", key, err)
		}
	}
	for _, f := range s.files {
		f.Close()
	}
	s.writers = make(map[string]*csv.Writer)
	s.files = make(map[string]*os.File)
	s.lru = list.New()
	s.lruElems = make(map[string]*list.Element)
	return firstErr
}

// FilesCreated reports the number of distinct shard files created over
// the lifetime of this writer (including ones since closed by LRU
// eviction).
func (s *Sharded) FilesCreated() int { return len(s.createdPaths) }
