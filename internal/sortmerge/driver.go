package sortmerge

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
)

func writeEmptyCSV(path string, header []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create empty sort output %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

// SortCSV performs a full external sort of the CSV stream in input
// (header row included) by the column at opts.KeyIndex, writing the final
// sorted, uncompressed CSV to outputPath. Scratch chunk files live under a
// run-scoped subdirectory of opts.TempDir and are removed as each pass
// consumes them; the scratch directory itself is removed once the sort
// completes, whether it succeeds or fails.
func SortCSV(logger arbor.ILogger, input io.Reader, outputPath string, opts Options) error {
	opts = opts.normalized()

	scratchDir := runScratchDir(opts.TempDir)
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return fmt.Errorf("failed to create sort scratch directory: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	pass0Dir := filepath.Join(scratchDir, "pass_0")
	if err := os.MkdirAll(pass0Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create pass_0 directory: %w", err)
	}

	chunkFiles, err := createSortedChunks(logger, input, opts, pass0Dir)
	if err != nil {
		return fmt.Errorf("failed to create sorted chunks: %w", err)
	}

	if len(chunkFiles) == 0 {
		return writeEmptyCSV(outputPath, opts.Header)
	}

	currentPassDir := pass0Dir
	passNum := 0
	for len(chunkFiles) > MergeWidth {
		passNum++
		logger.Info().Int("pass", passNum).Int("chunks", len(chunkFiles)).Int("width", MergeWidth).
			Msg("starting external sort merge pass")

		nextPassDir := filepath.Join(scratchDir, fmt.Sprintf("pass_%d", passNum))
		if err := os.MkdirAll(nextPassDir, 0o755); err != nil {
			return fmt.Errorf("failed to create pass_%d directory: %w", passNum, err)
		}

		var nextLevel []string
		for i := 0; i < len(chunkFiles); i += MergeWidth {
			end := i + MergeWidth
			if end > len(chunkFiles) {
				end = len(chunkFiles)
			}
			group := chunkFiles[i:end]

			intermediatePath := filepath.Join(nextPassDir, fmt.Sprintf("intermediate_chunk_%d.csv.zst", i/MergeWidth))
			if err := mergeChunks(logger, group, intermediatePath, opts); err != nil {
				return fmt.Errorf("merge pass %d failed: %w", passNum, err)
			}
			nextLevel = append(nextLevel, intermediatePath)

			for _, consumed := range group {
				if err := os.Remove(consumed); err != nil {
					logger.Warn().Err(err).Str("chunk", consumed).Msg("failed to delete consumed chunk")
				}
			}
		}

		if err := os.RemoveAll(currentPassDir); err != nil {
			logger.Warn().Err(err).Str("dir", currentPassDir).Msg("failed to clean up pass directory")
		}

		chunkFiles = nextLevel
		currentPassDir = nextPassDir
	}

	logger.Info().Int("chunks", len(chunkFiles)).Msg("starting final external sort merge")
	if err := mergeChunks(logger, chunkFiles, outputPath, opts); err != nil {
		return fmt.Errorf("final merge failed: %w", err)
	}

	if err := os.RemoveAll(currentPassDir); err != nil {
		logger.Warn().Err(err).Str("dir", currentPassDir).Msg("failed to clean up final pass directory")
	}
	return nil
}
