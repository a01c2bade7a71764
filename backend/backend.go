// Package backend defines the execution boundary of the solver core.
//
// The core emits a fully specified circuit plus the qubits to measure; a
// backend returns a mapping from measured bitstrings to observed
// frequencies. The in-process simulator in backend/sim and any remote
// executor are equivalent at this interface: both produce Counts of
// identical shape.
//
// Bitstrings are fixed-width binary strings over the measured qubits, most
// significant bit first (the highest measured qubit index is the leftmost
// character).
package backend

import (
	"context"
	"errors"

	"github.com/hupe1980/qsubset/quantum"
)

// ErrInvalidShots is returned when a backend is asked for a non-positive
// number of shots.
var ErrInvalidShots = errors.New("shots must be positive")

// ErrInvalidMeasureQubit is returned when a measured qubit index falls
// outside the circuit's register.
var ErrInvalidMeasureQubit = errors.New("measure qubit out of range")

// Counts maps measured bitstrings to observed frequencies.
type Counts map[string]int

// Total returns the total number of measurements.
func (c Counts) Total() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

// Backend executes a circuit and measures the given qubits.
//
// Run must not retain the circuit after returning. Errors are propagated to
// the caller unmodified; retry policy belongs to the backend, not the core.
type Backend interface {
	Run(ctx context.Context, circ *quantum.Circuit, measure []int, shots int) (Counts, error)
}

// DistributionBackend is implemented by backends that can expose the exact
// measurement distribution without sampling noise. Probabilities over all
// bitstrings sum to 1.
type DistributionBackend interface {
	Distribution(ctx context.Context, circ *quantum.Circuit, measure []int) (map[string]float64, error)
}
