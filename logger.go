package kquant

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with quantizer-specific helpers so that every
// run logs the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithK adds the cluster count to every record.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogRunStart logs the parameters of a quantization run.
func (l *Logger) LogRunStart(width, height, maxIterations, workers int, earlyStop bool) {
	l.Info("quantization started",
		"width", width,
		"height", height,
		"max_iterations", maxIterations,
		"workers", workers,
		"early_stop", earlyStop,
	)
}

// LogIteration logs one assignment/update round.
func (l *Logger) LogIteration(iteration, changed int) {
	l.Debug("iteration completed",
		"iteration", iteration,
		"changed", changed,
	)
}

// LogRunDone logs the outcome of a quantization run.
func (l *Logger) LogRunDone(stats RunStats, elapsed time.Duration) {
	l.Info("quantization completed",
		"iterations", stats.Iterations,
		"converged", stats.Converged,
		"elapsed", elapsed,
	)
}
