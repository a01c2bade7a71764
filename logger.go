package qsubset

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with qsubset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithQubits adds the total qubit count to the logger.
func (l *Logger) WithQubits(n int) *Logger {
	return &Logger{Logger: l.Logger.With("qubits", n)}
}

// WithShots adds the shot count to the logger.
func (l *Logger) WithShots(shots int) *Logger {
	return &Logger{Logger: l.Logger.With("shots", shots)}
}

// LogBuild logs circuit assembly. Register size is expected as a WithQubits
// field on the receiver.
func (l *Logger) LogBuild(ctx context.Context, gates, iterations int) {
	l.DebugContext(ctx, "circuit built",
		"gates", gates,
		"iterations", iterations,
	)
}

// LogExecute logs one execution. The shot count is expected as a WithShots
// field on the receiver.
func (l *Logger) LogExecute(ctx context.Context, solutions int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "execution failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "execution completed",
			"solutions", solutions,
			"duration", duration,
		)
	}
}
