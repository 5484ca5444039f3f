// Package logger provides leveled console logging for airis commands.
//
// Output is prefixed with [HH:MM:SS] timestamps, filtered by a minimum
// level, and colorized when writing to a terminal. Implementations are
// safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering.
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger writes timestamped, level-filtered messages to a writer.
// If the writer is a TTY (and NO_COLOR is unset) warnings, errors, and
// successes are colorized.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mu          sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given
// minimum level. Valid levels: trace, debug, info, warn, error
// (case-insensitive); empty or invalid levels default to info. A nil
// writer silently discards all messages.
func NewConsoleLogger(w io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(w),
	}
}

// isTerminal reports whether w is a TTY that should receive color.
// NO_COLOR is respected via the color library's global flag.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel lowercases and validates a level, defaulting to info.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog reports whether a message at messageLevel passes the filter.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logf writes one timestamped line, optionally colorized.
func (cl *ConsoleLogger) logf(level string, colorize func(format string, a ...interface{}) string, format string, args ...interface{}) {
	if cl.writer == nil || !cl.shouldLog(level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if cl.colorOutput && colorize != nil {
		msg = colorize("%s", msg)
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s\n", time.Now().Format("15:04:05"), msg)
}

// Tracef logs at trace level.
func (cl *ConsoleLogger) Tracef(format string, args ...interface{}) {
	cl.logf("trace", nil, format, args...)
}

// Debugf logs at debug level.
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	cl.logf("debug", nil, format, args...)
}

// Infof logs at info level.
func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	cl.logf("info", nil, format, args...)
}

// Successf logs at info level in green.
func (cl *ConsoleLogger) Successf(format string, args ...interface{}) {
	cl.logf("info", color.GreenString, format, args...)
}

// Warnf logs at warn level in yellow.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.logf("warn", color.YellowString, format, args...)
}

// Errorf logs at error level in red.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.logf("error", color.RedString, format, args...)
}
