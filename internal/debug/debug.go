// Package debug provides the file-backed debug log used across spree.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DebugLogger manages debug output using Go's standard logging
type DebugLogger struct {
	logger  *log.Logger
	logFile *os.File
}

// LogDir returns the directory holding debug.log.
func LogDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "spree"), nil
}

// NewDebugLogger opens <cache dir>/spree/debug.log, falling back to stderr.
func NewDebugLogger() *DebugLogger {
	var logFile *os.File

	dir, err := LogDir()
	if err == nil {
		err = os.MkdirAll(dir, 0755)
	}
	if err == nil {
		logFile, err = os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open debug log: %v\n", err)
		logFile = os.Stderr
	}

	d := NewDebugLoggerTo(logFile)
	d.logFile = logFile
	d.logger.Println("=== Debug session started ===")
	return d
}

// NewDebugLoggerTo logs to w without owning it.
func NewDebugLoggerTo(w io.Writer) *DebugLogger {
	return &DebugLogger{
		logger: log.New(w, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
	}
}

// Log adds a message using Go's standard logger
func (d *DebugLogger) Log(format string, args ...interface{}) {
	d.output(3, format, args...)
}

// output skips itself and its direct caller so Lshortfile names whoever
// called Log.
func (d *DebugLogger) output(calldepth int, format string, args ...interface{}) {
	d.logger.Output(calldepth, fmt.Sprintf(format, args...))
}

// Close closes the debug log file
func (d *DebugLogger) Close() {
	d.logger.Println("=== Debug session ended ===")

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

// Global debug logger instance
var globalDebugLogger *DebugLogger

// Log logs a message to the global debug logger. It is a no-op until
// InitDebugLogger or SetLogger has been called.
func Log(format string, args ...interface{}) {
	if globalDebugLogger != nil {
		globalDebugLogger.output(3, format, args...)
	}
}

// InitDebugLogger initializes the global debug logger
func InitDebugLogger() *DebugLogger {
	globalDebugLogger = NewDebugLogger()
	return globalDebugLogger
}

// SetLogger replaces the global logger; nil disables logging.
func SetLogger(d *DebugLogger) {
	globalDebugLogger = d
}
