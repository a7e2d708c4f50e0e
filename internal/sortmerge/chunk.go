package sortmerge

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/ternarybob/arbor"
)

type chunkBatch struct {
	index int
	rows  [][]string
}

type chunkResult struct {
	index int
	path  string
}

// createSortedChunks streams input through a CSV reader, splits it into
// chunks of opts.ChunkSize rows, and fans each chunk out to a pool of
// opts.Threads workers that sort it by the key column and spill it to a
// zstd-compressed CSV file under dir. Reading the next chunk overlaps with
// sorting/compressing the previous one, so chunk formation is pipelined
// rather than fully serial like the reference implementation.
func createSortedChunks(logger arbor.ILogger, input io.Reader, opts Options, dir string) ([]string, error) {
	logger.Info().Msg("external sort phase 1: creating sorted chunks")

	reader := csv.NewReader(input)
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header from sort input: %w", err)
	}

	batches := make(chan chunkBatch, opts.Threads*2)
	results := make(chan chunkResult, opts.Threads*2)
	errs := make(chan error, opts.Threads)

	var workersWG sync.WaitGroup
	workersWG.Add(opts.Threads)
	for i := 0; i < opts.Threads; i++ {
		go func() {
			defer workersWG.Done()
			for batch := range batches {
				path, err := sortAndWriteChunk(batch, opts, dir)
				if err != nil {
					errs <- err
					continue
				}
				results <- chunkResult{index: batch.index, path: path}
			}
		}()
	}

	go func() {
		workersWG.Wait()
		close(results)
		close(errs)
	}()

	var chunkPaths []chunkResult
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range results {
			chunkPaths = append(chunkPaths, r)
		}
	}()

	readErr := func() error {
		defer close(batches)
		chunkIndex := 0
		rows := make([][]string, 0, opts.ChunkSize)
		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read row from sort input: %w", err)
			}
			rowCopy := append([]string(nil), row...)
			rows = append(rows, rowCopy)
			if len(rows) >= opts.ChunkSize {
				batches <- chunkBatch{index: chunkIndex, rows: rows}
				chunkIndex++
				rows = make([][]string, 0, opts.ChunkSize)
			}
		}
		if len(rows) > 0 {
			batches <- chunkBatch{index: chunkIndex, rows: rows}
		}
		return nil
	}()

	<-collected

	var firstErr error
	for e := range errs {
		if firstErr == nil {
			firstErr = e
		}
	}
	if readErr != nil && firstErr == nil {
		firstErr = readErr
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(chunkPaths, func(i, j int) bool { return chunkPaths[i].index < chunkPaths[j].index })
	paths := make([]string, len(chunkPaths))
	for i, c := range chunkPaths {
		paths[i] = c.path
	}

	logger.Info().Int("chunks", len(paths)).Msg("chunking complete")
	return paths, nil
}

func sortAndWriteChunk(batch chunkBatch, opts Options, dir string) (string, error) {
	sort.Slice(batch.rows, func(i, j int) bool {
		return batch.rows[i][opts.KeyIndex] < batch.rows[j][opts.KeyIndex]
	})

	path := filepath.Join(dir, fmt.Sprintf("chunk_%d.csv.zst", batch.index))
	if err := writeCompressedCSV(path, opts.Header, batch.rows); err != nil {
		return "", fmt.Errorf("failed to write chunk %s: %w", path, err)
	}
	return path, nil
}

func writeCompressedCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}

	w := csv.NewWriter(enc)
	if err := w.Write(header); err != nil {
		enc.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			enc.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
