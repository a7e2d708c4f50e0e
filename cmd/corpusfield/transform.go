package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/corpusfield/internal/common"
	"github.com/ternarybob/corpusfield/internal/extract"
	"github.com/ternarybob/corpusfield/internal/groupby"
	"github.com/ternarybob/corpusfield/internal/sortmerge"
)

func runTransform(args []string) int {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)

	var configFiles configPaths
	fs.Var(&configFiles, "config", "configuration file path (repeatable, later files win)")
	fs.Var(&configFiles, "c", "shorthand for -config")

	dataset := fs.String("dataset", "", "crossref|openalex")
	input := fs.String("input", "", "CSV produced by the extract stage (sorted by this command)")
	output := fs.String("output", "", "output CSV path; defaults to <input_stem>_processed.csv")
	chunkSize := fs.Int("chunk-size", 0, "sort chunk size in records; 0 = use config default")
	tempDir := fs.String("temp-dir", "", "scratch directory for external sort; empty = system temp")
	threads := fs.Int("threads", 0, "worker count; 0 = auto")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	tc := &cfg.Transform
	if *dataset != "" {
		tc.Dataset = common.Dataset(*dataset)
	}
	if *input != "" {
		tc.Input = *input
	}
	if *output != "" {
		tc.Output = *output
	}
	if *chunkSize != 0 {
		tc.ChunkSize = *chunkSize
	}
	if *tempDir != "" {
		tc.TempDir = *tempDir
	}
	if *threads != 0 {
		tc.Threads = *threads
	}

	if err := tc.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		return 2
	}

	if tc.Output == "" {
		dir := filepath.Dir(tc.Input)
		stem := strings.TrimSuffix(filepath.Base(tc.Input), filepath.Ext(tc.Input))
		tc.Output = filepath.Join(dir, stem+"_processed.csv")
	}
	if tc.TempDir == "" {
		tc.TempDir = os.TempDir()
	}

	logger := common.SetupLogger(cfg.Logging, "")
	defer common.Stop()

	resolvedThreads := common.ResolveThreads(tc.Threads)
	common.PrintStartupBanner("transform", tc.Dataset, resolvedThreads, logger)
	defer common.PrintShutdownBanner("transform", logger)

	var extractHeader []string
	var cols groupby.Columns
	var materialize groupby.Materializer
	var outputHeader []string
	switch tc.Dataset {
	case common.DatasetCrossref:
		extractHeader = extract.CrossrefHeader
		cols = groupby.Columns{Key: 0, DOI: -1, FieldName: 1, SubfieldPath: 2, Value: 3}
		materialize = groupby.MaterializeCrossrefGroup
		outputHeader = groupby.CrossrefHeader
	case common.DatasetOpenAlex:
		extractHeader = extract.OpenAlexHeader
		cols = groupby.Columns{Key: 0, DOI: 1, FieldName: 2, SubfieldPath: 3, Value: 4}
		materialize = groupby.MaterializeOpenAlexGroup
		outputHeader = groupby.OpenAlexHeader
	}

	in, err := os.Open(tc.Input)
	if err != nil {
		logger.Error().Err(err).Str("input", tc.Input).Msg("failed to open transform input")
		return 1
	}
	defer in.Close()

	sortedPath := filepath.Join(tc.TempDir, common.NewRunID()+"_sorted.csv")
	defer os.Remove(sortedPath)

	sortOpts := sortmerge.Options{
		Header:    extractHeader,
		KeyIndex:  cols.Key,
		ChunkSize: tc.ChunkSize,
		Threads:   resolvedThreads,
		TempDir:   tc.TempDir,
	}
	if err := sortmerge.SortCSV(logger, in, sortedPath, sortOpts); err != nil {
		logger.Error().Err(err).Msg("external sort failed")
		return 1
	}

	sorted, err := os.Open(sortedPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to reopen sorted intermediate file")
		return 1
	}
	defer sorted.Close()

	out, err := os.Create(tc.Output)
	if err != nil {
		logger.Error().Err(err).Str("output", tc.Output).Msg("failed to create transform output")
		return 1
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(outputHeader); err != nil {
		logger.Error().Err(err).Msg("failed to write transform output header")
		return 1
	}

	rowsWritten, err := groupby.Run(logger, sorted, cols, materialize, w)
	if err != nil {
		logger.Error().Err(err).Msg("group-by reshape failed")
		return 1
	}

	logger.Info().Int("rows_written", rowsWritten).Str("output", tc.Output).Msg("transform summary")
	return 0
}
