// -----------------------------------------------------------------------
// Logger - arbor logger bootstrap
// -----------------------------------------------------------------------

package common

import (
	"fmt"
	"os"
	"sync"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the global logger instance. If SetupLogger hasn't run
// yet, returns a fallback console logger so early callers never see a nil.
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(createWriterConfig(nil, models.LogWriterTypeConsole, ""))
	}
	return globalLogger
}

// SetupLogger configures and installs the global logger from the supplied
// LoggingConfig. It honors "stdout"/"console" and "file" in Output; "file"
// writes to logFilePath and is skipped when logFilePath is empty. Console
// output is used whenever no file writer is attached.
func SetupLogger(cfg LoggingConfig, logFilePath string) arbor.ILogger {
	logger := arbor.NewLogger()

	hasFile := false
	hasConsole := false
	for _, output := range cfg.Output {
		switch output {
		case "file":
			hasFile = true
		case "stdout", "console":
			hasConsole = true
		}
	}

	if hasFile && logFilePath != "" {
		logger = logger.WithFileWriter(createWriterConfig(&cfg, models.LogWriterTypeFile, logFilePath))
	}
	if hasConsole || !hasFile || logFilePath == "" {
		logger = logger.WithConsoleWriter(createWriterConfig(&cfg, models.LogWriterTypeConsole, ""))
	}

	level, ok := NormalizeLogLevel(cfg.Level)
	if !ok {
		fmt.Fprintf(os.Stderr, "unrecognized log_level %q, defaulting to info\n", cfg.Level)
	}
	logger = logger.WithLevelFromString(level)

	loggerMutex.Lock()
	globalLogger = logger
	loggerMutex.Unlock()

	return logger
}

func createWriterConfig(cfg *LoggingConfig, writerType models.LogWriterType, filename string) models.WriterConfiguration {
	timeFormat := "15:04:05.000"
	if cfg != nil && cfg.TimeFormat != "" {
		timeFormat = cfg.TimeFormat
	}

	return models.WriterConfiguration{
		Type:             writerType,
		FileName:         filename,
		TimeFormat:       timeFormat,
		DisableTimestamp: false,
		MaxSize:          100 * 1024 * 1024,
		MaxBackups:       3,
	}
}

// Stop flushes any remaining buffered logs before process exit. Safe to
// call multiple times.
func Stop() {
	arborcommon.Stop()
}
