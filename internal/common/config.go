// -----------------------------------------------------------------------
// Configuration - nested TOML configuration with CLI override support
// -----------------------------------------------------------------------

package common

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Dataset identifies which schema/filter rules a run applies.
type Dataset string

const (
	DatasetCrossref Dataset = "crossref"
	DatasetOpenAlex Dataset = "openalex"
)

// LoggingConfig controls arbor logger setup.
type LoggingConfig struct {
	Level      string   `toml:"level"`       // debug|info|warn|error (case-insensitive, unrecognized -> info + stderr notice)
	Output     []string `toml:"output"`      // any of: stdout, console, file
	TimeFormat string   `toml:"time_format"` // defaults to "15:04:05.000"
}

// ExtractConfig controls the field-extraction stage (C1-C8).
type ExtractConfig struct {
	Dataset      Dataset  `toml:"dataset"`        // crossref|openalex
	Input        string   `toml:"input"`          // directory to scan for *.jsonl.gz / *.gz input files
	Output       string   `toml:"output"`         // output CSV path, or output directory when Organize is set
	Fields       string   `toml:"fields"`         // required: comma separated dotted field specifications
	Threads      int      `toml:"threads"`        // 0 = auto (runtime.NumCPU())
	BatchSize    int      `toml:"batch_size"`     // rows buffered per writer batch, default 10000
	Organize     bool     `toml:"organize"`       // true: shard output by the grouping key instead of one file
	Member       string   `toml:"member"`         // crossref-only: exact-match member id filter
	SourceID     string   `toml:"source_id"`      // openalex-only: exact-match source id filter
	DOIPrefix    string   `toml:"doi_prefix"`     // exact-match doi prefix filter
	MaxOpenFiles int      `toml:"max_open_files"` // LRU cap on concurrently open sharded output files, default 100
}

// TransformConfig controls the external sort + group-by stage (C9-C10).
type TransformConfig struct {
	Dataset   Dataset `toml:"dataset"`
	Input     string  `toml:"input"`      // CSV produced by the extract stage
	Output    string  `toml:"output"`     // defaults to "<input_stem>_processed.csv"
	ChunkSize int     `toml:"chunk_size"` // rows per sort chunk before compression, default 500000
	TempDir   string  `toml:"temp_dir"`   // scratch directory, defaults to os.TempDir()
	Threads   int     `toml:"threads"`    // 0 = auto
}

// Config is the root configuration object, loaded from TOML and then
// overridden by CLI flags.
type Config struct {
	Logging   LoggingConfig   `toml:"logging"`
	Extract   ExtractConfig   `toml:"extract"`
	Transform TransformConfig `toml:"transform"`
}

// NewDefaultConfig returns a configuration populated with the documented
// defaults. Technical parameters are hardcoded here; only user-facing
// settings are expected to be overridden in a config file or via flags.
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05.000",
		},
		Extract: ExtractConfig{
			Dataset:      DatasetCrossref,
			Threads:      0,
			BatchSize:    10_000,
			Organize:     false,
			MaxOpenFiles: 100,
		},
		Transform: TransformConfig{
			Dataset:   DatasetCrossref,
			ChunkSize: 500_000,
			Threads:   0,
		},
	}
}

// LoadFromFiles loads configuration from zero or more TOML files, merging
// each on top of the defaults in order (later files override earlier ones).
// An empty paths list simply returns the defaults.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	return config, nil
}

// ResolveThreads turns a configured thread count (0 = auto) into a concrete
// worker count: a positive configured value is returned unchanged, anything
// else resolves to the number of logical CPUs.
func ResolveThreads(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU()
}

// NormalizeLogLevel lower-cases and validates a configured log level,
// returning "info" plus ok=false for anything unrecognized so the caller
// can emit the required stderr notice.
func NormalizeLogLevel(level string) (normalized string, ok bool) {
	l := strings.ToLower(strings.TrimSpace(level))
	switch l {
	case "debug", "info", "warn", "error":
		return l, true
	default:
		return "info", false
	}
}

// Validate checks that the extract configuration is usable, independent of
// which CLI flags were actually supplied.
func (c *ExtractConfig) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if strings.TrimSpace(c.Fields) == "" {
		return fmt.Errorf("fields is required (comma-separated dotted field specifications)")
	}
	if c.Dataset != DatasetCrossref && c.Dataset != DatasetOpenAlex {
		return fmt.Errorf("dataset must be %q or %q, got %q", DatasetCrossref, DatasetOpenAlex, c.Dataset)
	}
	if c.MaxOpenFiles < 1 {
		return fmt.Errorf("max_open_files must be >= 1, got %d", c.MaxOpenFiles)
	}
	return nil
}

// Validate checks that the transform configuration is usable.
func (c *TransformConfig) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Dataset != DatasetCrossref && c.Dataset != DatasetOpenAlex {
		return fmt.Errorf("dataset must be %q or %q, got %q", DatasetCrossref, DatasetOpenAlex, c.Dataset)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be >= 1, got %d", c.ChunkSize)
	}
	return nil
}
