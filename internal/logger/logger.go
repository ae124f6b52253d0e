// Package logger provides leveled logging for dsctl.
// Debug, Info and Warn lines are written only in verbose mode (--verbose);
// Error lines are always written. Output goes to stderr so that command
// results on stdout stay machine readable.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs invocation-level detail.
func Debug(format string, args ...any) {
	logf(false, "DEBUG", format, args...)
}

// Info logs setup and lifecycle events.
func Info(format string, args ...any) {
	logf(false, "INFO", format, args...)
}

// Warn logs recoverable failures, e.g. a history write that did not stick.
func Warn(format string, args ...any) {
	logf(false, "WARN", format, args...)
}

// Error logs failures regardless of verbose mode.
func Error(format string, args ...any) {
	logf(true, "ERROR", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(always bool, level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}
