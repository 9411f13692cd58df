package core

import (
	"fmt"
	"log"
	"strings"
)

// LogLevel represents the logging level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a case-insensitive level name. Unknown names map to info.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging on top of a stdlib *log.Logger.
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing through the standard logger.
func NewLogger(level string) *Logger {
	return &Logger{level: ParseLogLevel(level), out: log.Default()}
}

// WithOutput returns a copy of the logger that writes to out.
func (l *Logger) WithOutput(out *log.Logger) *Logger {
	return &Logger{level: l.level, out: out}
}

// Level returns the minimum level that is emitted.
func (l *Logger) Level() LogLevel { return l.level }

func (l *Logger) enabled(level LogLevel) bool {
	return l != nil && level >= l.level
}

func (l *Logger) logf(level LogLevel, format string, v ...any) {
	if !l.enabled(level) {
		return
	}
	l.out.Print("[" + strings.ToUpper(level.String()) + "] " + fmt.Sprintf(format, v...))
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, format, v...) }

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...any) { l.logf(LogLevelInfo, format, v...) }

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, v ...any) { l.logf(LogLevelWarn, format, v...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, v ...any) { l.logf(LogLevelError, format, v...) }

// Fatalf logs a message and exits.
func (l *Logger) Fatalf(format string, v ...any) {
	out := log.Default()
	if l != nil && l.out != nil {
		out = l.out
	}
	out.Fatalf("[FATAL] "+format, v...)
}
