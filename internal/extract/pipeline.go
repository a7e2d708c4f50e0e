package extract

import (
	"fmt"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/corpusfield/internal/common"
	"github.com/ternarybob/corpusfield/internal/jsonl"
	"github.com/ternarybob/corpusfield/internal/writer"
)

// LineProcessor is the per-dataset record filter/extractor; CrossrefProcessor
// and OpenAlexProcessor both implement it.
type LineProcessor interface {
	ProcessLine(line []byte, stats *FileStats) ([]Row, error)
}

// FileResult is what one file-processing worker reports back.
type FileResult struct {
	Path  string
	Stats *FileStats
	Err   error
}

// Run drives the full producer/consumer extraction pipeline: threads worker
// goroutines (at least one) pull files off a shared queue, streams each file's records through newProcessor, and sends
// batched output rows to a single writer goroutine serializing to
// output. Stats are merged into agg only after the parallel phase
// finishes, matching the reference extractor's "collect, then aggregate
// serially" split.
func Run(
	logger arbor.ILogger,
	files []string,
	newProcessor func(sourceFile string) LineProcessor,
	batchSize int,
	threads int,
	output writer.Strategy,
	agg *Aggregator,
) ([]FileResult, error) {
	if batchSize < 1 {
		batchSize = 10000
	}
	channelCapacity := threads * 4
	if channelCapacity < 8 {
		channelCapacity = 8
	}
	batches := make(chan []Row, channelCapacity)

	var writerErr error
	var writerWG sync.WaitGroup
	writerWG.Add(1)
	common.SafeGo(logger, "extract-writer", func() {
		defer writerWG.Done()
		for batch := range batches {
			if len(batch) == 0 {
				continue
			}
			if err := output.WriteBatch(batch); err != nil {
				logger.Error().Err(err).Msg("writer goroutine failed to write batch")
				writerErr = err
			}
		}
	})

	fileQueue := make(chan string, len(files))
	for _, f := range files {
		fileQueue <- f
	}
	close(fileQueue)

	var results []FileResult
	var workersWG sync.WaitGroup
	var resultsMu sync.Mutex

	worker := func() {
		defer workersWG.Done()
		for path := range fileQueue {
			stats := NewFileStats()
			processor := newProcessor(path)
			pending := make([]Row, 0, batchSize)

			flush := func() {
				if len(pending) == 0 {
					return
				}
				batches <- pending
				pending = make([]Row, 0, batchSize)
			}

			err := jsonl.Walk(path, func(lineNum int, line []byte) error {
				stats.LinesProcessed++
				rows, lineErr := processor.ProcessLine(line, stats)
				if lineErr != nil {
					logger.Warn().Err(lineErr).Str("file", path).Int("line", lineNum).Msg("error parsing JSON line")
					return nil
				}
				pending = append(pending, rows...)
				if len(pending) >= batchSize {
					flush()
				}
				return nil
			})
			flush()

			resultsMu.Lock()
			results = append(results, FileResult{Path: path, Stats: stats, Err: err})
			resultsMu.Unlock()
		}
	}

	if threads < 1 {
		threads = 1
	}
	workersWG.Add(threads)
	for i := 0; i < threads; i++ {
		common.SafeGo(logger, fmt.Sprintf("extract-worker-%d", i), worker)
	}

	workersWG.Wait()
	close(batches)
	writerWG.Wait()

	for _, r := range results {
		if r.Err != nil {
			agg.MarkFileError()
			continue
		}
		agg.MergeFile(r.Stats)
	}

	if err := output.Flush(); err != nil {
		return results, fmt.Errorf("failed to flush output: %w", err)
	}
	if writerErr != nil {
		return results, writerErr
	}
	return results, nil
}
