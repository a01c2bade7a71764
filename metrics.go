package qsubset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after circuit assembly. gates is the total
	// elementary gate count of the assembled circuit.
	RecordBuild(gates int, duration time.Duration)

	// RecordExecute is called after each execution. shots is the number of
	// samples requested (0 in exact-distribution mode), solutions the
	// number of accepted subsets, err nil if successful.
	RecordExecute(shots, solutions int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)               {}
func (NoopMetricsCollector) RecordExecute(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildTotalNanos   atomic.Int64
	ExecuteCount      atomic.Int64
	ExecuteErrors     atomic.Int64
	ExecuteTotalNanos atomic.Int64
	SolutionsFound    atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(gates int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordExecute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExecute(shots, solutions int, duration time.Duration, err error) {
	b.ExecuteCount.Add(1)
	b.ExecuteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExecuteErrors.Add(1)
		return
	}
	b.SolutionsFound.Add(int64(solutions))
}
