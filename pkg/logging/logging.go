package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Level defines the severity of the log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes Level satisfy the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel converts the level to its log/slog equivalent.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO for unknown
	}
}

// LevelFromFlags maps the conventional CLI verbosity flags onto a level.
// Debug wins over verbose, verbose over quiet. With nothing set, warnings
// and errors get through; progress and results are the commands' own output,
// not log entries.
func LevelFromFlags(quiet, verbose, debug bool) Level {
	switch {
	case debug:
		return LevelDebug
	case verbose:
		return LevelInfo
	case quiet:
		return LevelError
	default:
		return LevelWarn
	}
}

// InitForCLI initializes the logging system for a CLI binary. It installs a
// text handler writing to output as the process-wide slog default. Call it
// once at startup, before anything logs.
func InitForCLI(filterLevel Level, output io.Writer) {
	opts := &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	}
	logger := slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(logger)
}

// For returns a logger tagged with a subsystem attribute, for code that
// wants attributable entries without threading a logger through every call.
func For(subsystem string) *slog.Logger {
	return slog.Default().With(slog.String("subsystem", subsystem))
}

func logInternal(level Level, subsystem string, err error, messageFmt string, args ...interface{}) {
	logger := slog.Default()
	if !logger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	var slogAttrs []slog.Attr
	slogAttrs = append(slogAttrs, slog.String("subsystem", subsystem))
	if err != nil {
		slogAttrs = append(slogAttrs, slog.String("error", err.Error()))
	}

	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, slogAttrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
