package sortmerge

import (
	"container/heap"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ternarybob/arbor"
)

type chunkReader struct {
	file    *os.File
	decoder *zstd.Decoder
	csv     *csv.Reader
}

func openChunkReader(path string) (*chunkReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r := csv.NewReader(dec)
	if _, err := r.Read(); err != nil {
		dec.Close()
		f.Close()
		return nil, fmt.Errorf("failed to read chunk header: %w", err)
	}
	return &chunkReader{file: f, decoder: dec, csv: r}, nil
}

func (c *chunkReader) next() ([]string, error) {
	return c.csv.Read()
}

func (c *chunkReader) close() {
	c.decoder.Close()
	c.file.Close()
}

type heapItem struct {
	key        string
	row        []string
	readerIdx  int
}

type recordHeap []heapItem

func (h recordHeap) Len() int            { return len(h) }
func (h recordHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h recordHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *recordHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// mergeChunks k-way merges the given already key-sorted chunk files into a
// single sorted CSV at outputPath (zstd-compressed when outputPath ends in
// ".zst", as intermediate passes do; plain CSV otherwise), using a min-heap so at
// most one row per input chunk is held in memory at a time.
func mergeChunks(logger arbor.ILogger, chunkPaths []string, outputPath string, opts Options) error {
	logger.Info().Int("chunks", len(chunkPaths)).Msg("external sort phase 2: merging chunks")

	readers := make([]*chunkReader, len(chunkPaths))
	for i, path := range chunkPaths {
		r, err := openChunkReader(path)
		if err != nil {
			for j := 0; j < i; j++ {
				readers[j].close()
			}
			return fmt.Errorf("failed to open chunk %s: %w", path, err)
		}
		readers[i] = r
	}
	defer func() {
		for _, r := range readers {
			r.close()
		}
	}()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create merge output %s: %w", outputPath, err)
	}
	defer out.Close()

	var dest io.Writer = out
	var enc *zstd.Encoder
	if strings.HasSuffix(outputPath, ".zst") {
		enc, err = zstd.NewWriter(out)
		if err != nil {
			return fmt.Errorf("failed to open compressor for %s: %w", outputPath, err)
		}
		defer enc.Close()
		dest = enc
	}

	w := csv.NewWriter(dest)
	if err := w.Write(opts.Header); err != nil {
		return fmt.Errorf("failed to write merge output header: %w", err)
	}

	h := &recordHeap{}
	heap.Init(h)
	for i, r := range readers {
		row, err := r.next()
		if err == io.EOF {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read initial row from chunk %s: %w", chunkPaths[i], err)
		}
		heap.Push(h, heapItem{key: row[opts.KeyIndex], row: row, readerIdx: i})
	}

	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		if err := w.Write(item.row); err != nil {
			return fmt.Errorf("failed to write merged row: %w", err)
		}

		row, err := readers[item.readerIdx].next()
		if err == io.EOF {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read next row from chunk %s: %w", chunkPaths[item.readerIdx], err)
		}
		heap.Push(h, heapItem{key: row[opts.KeyIndex], row: row, readerIdx: item.readerIdx})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush merge output: %w", err)
	}
	return nil
}
