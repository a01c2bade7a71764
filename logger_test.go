package qsubset

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	t.Run("Build", func(t *testing.T) {
		buf.Reset()
		logger.WithQubits(7).LogBuild(context.Background(), 42, 3)

		out := buf.String()
		assert.Contains(t, out, "circuit built")
		assert.Contains(t, out, "qubits=7")
		assert.Contains(t, out, "gates=42")
		assert.Contains(t, out, "iterations=3")
	})

	t.Run("Execute", func(t *testing.T) {
		buf.Reset()
		logger.WithShots(1024).LogExecute(context.Background(), 2, time.Millisecond, nil)

		out := buf.String()
		assert.Contains(t, out, "execution completed")
		assert.Contains(t, out, "shots=1024")
		assert.Contains(t, out, "solutions=2")
	})

	t.Run("ExecuteError", func(t *testing.T) {
		buf.Reset()
		logger.WithShots(16).LogExecute(context.Background(), 0, time.Millisecond, context.Canceled)

		out := buf.String()
		assert.Contains(t, out, "execution failed")
		assert.Contains(t, out, "shots=16")
	})
}

func TestExecuteLogging(t *testing.T) {
	var buf bytes.Buffer
	solver, err := New([]float64{5, 2, 1}, 3,
		WithExactDistribution(true),
		WithLogger(NewLogger(slog.NewTextHandler(&buf, nil))),
	)
	require.NoError(t, err)

	_, err = solver.Execute(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "execution completed")
	// Exact mode draws no samples.
	assert.Contains(t, out, "shots=0")
}
