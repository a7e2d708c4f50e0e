package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/corpusfield/internal/common"
	"github.com/ternarybob/corpusfield/internal/extract"
	"github.com/ternarybob/corpusfield/internal/fieldspec"
	"github.com/ternarybob/corpusfield/internal/jsonl"
	"github.com/ternarybob/corpusfield/internal/schema"
	"github.com/ternarybob/corpusfield/internal/trie"
	"github.com/ternarybob/corpusfield/internal/writer"
)

func runExtract(args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)

	var configFiles configPaths
	fs.Var(&configFiles, "config", "configuration file path (repeatable, later files win)")
	fs.Var(&configFiles, "c", "shorthand for -config")

	dataset := fs.String("dataset", "", "crossref|openalex")
	input := fs.String("input", "", "input directory to scan")
	output := fs.String("output", "", "output CSV path, or output directory when -organize is set")
	fields := fs.String("fields", "", "comma-separated dotted field specifications")
	threads := fs.Int("threads", 0, "worker count; 0 = auto")
	batchSize := fs.Int("batch-size", 0, "rows per writer batch; 0 = use config default")
	organize := fs.Bool("organize", false, "shard output by grouping key instead of a single file")
	member := fs.String("member", "", "crossref-only: exact-match member id filter")
	sourceID := fs.String("source-id", "", "openalex-only: exact-match source id filter")
	doiPrefix := fs.String("doi-prefix", "", "exact-match doi prefix filter")
	maxOpenFiles := fs.Int("max-open-files", 0, "LRU cap on open sharded output files; 0 = use config default")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ec := &cfg.Extract
	if *dataset != "" {
		ec.Dataset = common.Dataset(*dataset)
	}
	if *input != "" {
		ec.Input = *input
	}
	if *output != "" {
		ec.Output = *output
	}
	if *fields != "" {
		ec.Fields = *fields
	}
	if *threads != 0 {
		ec.Threads = *threads
	}
	if *batchSize != 0 {
		ec.BatchSize = *batchSize
	}
	if *organize {
		ec.Organize = true
	}
	if *member != "" {
		ec.Member = *member
	}
	if *sourceID != "" {
		ec.SourceID = *sourceID
	}
	if *doiPrefix != "" {
		ec.DOIPrefix = *doiPrefix
	}
	if *maxOpenFiles != 0 {
		ec.MaxOpenFiles = *maxOpenFiles
	}

	if err := ec.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		return 2
	}

	logger := common.SetupLogger(cfg.Logging, "")
	defer common.Stop()

	resolvedThreads := common.ResolveThreads(ec.Threads)
	common.PrintStartupBanner("extract", ec.Dataset, resolvedThreads, logger)
	defer common.PrintShutdownBanner("extract", logger)

	suffix := ".jsonl.gz"
	if ec.Dataset == common.DatasetOpenAlex {
		suffix = ".gz"
	}
	files, err := jsonl.FindFiles(ec.Input, suffix)
	if err != nil {
		logger.Error().Err(err).Str("input", ec.Input).Msg("failed to walk input directory")
		return 1
	}
	if len(files) == 0 {
		logger.Warn().Str("input", ec.Input).Str("suffix", suffix).Msg("no input files found")
		return 0
	}

	specs := fieldspec.Parse(ec.Fields)

	var table schema.Table
	var header []string
	impliedRelationWildcard := false
	switch ec.Dataset {
	case common.DatasetCrossref:
		table = schema.Crossref
		header = extract.CrossrefHeader
		impliedRelationWildcard = true
	case common.DatasetOpenAlex:
		table = schema.OpenAlex
		header = extract.OpenAlexHeader
	}

	tr := trie.Build(specs, table, impliedRelationWildcard)

	var out writer.Strategy
	if ec.Organize {
		out, err = writer.NewSharded(ec.Output, header, ec.MaxOpenFiles)
	} else {
		out, err = writer.NewSingleFile(ec.Output, header)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize output writer")
		return 1
	}

	agg := extract.NewAggregator()

	newProcessor := func(sourceFile string) extract.LineProcessor {
		switch ec.Dataset {
		case common.DatasetCrossref:
			return &extract.CrossrefProcessor{
				Trie:   tr,
				Filter: extract.CrossrefFilter{Member: ec.Member, DOIPrefix: ec.DOIPrefix},
			}
		default:
			return &extract.OpenAlexProcessor{
				Trie:       tr,
				Filter:     extract.OpenAlexFilter{SourceID: ec.SourceID, DOIPrefix: ec.DOIPrefix},
				SourceFile: filepath.Base(sourceFile),
			}
		}
	}

	results, err := extract.Run(logger, files, newProcessor, ec.BatchSize, resolvedThreads, out, agg)
	if err != nil {
		logger.Error().Err(err).Msg("extraction pipeline failed")
		return 1
	}

	final := agg.Finalize()
	logger.Info().
		Int("files_processed", len(results)).
		Int("files_ok", final.FilesOK).
		Int("files_error", final.FilesError).
		Int("unique_keys", final.UniqueKeys).
		Int("unique_groups", final.UniqueGroups).
		Int("total_fields_extracted", final.TotalFieldRecords).
		Int("output_files", out.FilesCreated()).
		Msg("extraction summary")

	return 0
}
