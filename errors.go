package qsubset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValueSet is returned when a problem instance is constructed
	// with no values.
	ErrEmptyValueSet = errors.New("value set must not be empty")

	// ErrDegenerateNormalization is returned when the instance cannot be
	// normalized: all values are zero, or the sum of values plus target is
	// zero. Such instances would produce an undefined register width or a
	// division by zero during phase encoding, so construction fails fast.
	ErrDegenerateNormalization = errors.New("degenerate normalization")

	// ErrInvalidShots is returned when the configured shot count is not
	// positive.
	ErrInvalidShots = errors.New("shots must be positive")

	// ErrInvalidIterations is returned when the configured amplification
	// iteration count is negative.
	ErrInvalidIterations = errors.New("iterations must not be negative")

	// ErrExactDistributionUnsupported is returned when exact-distribution
	// mode is requested but the configured backend only supports sampled
	// execution.
	ErrExactDistributionUnsupported = errors.New("backend does not support exact distributions")

	// ErrInvalidBitstring is returned when a measured bitstring does not
	// match the index-register width or contains characters other than
	// '0' and '1'.
	ErrInvalidBitstring = errors.New("invalid bitstring")
)

// ErrNonFiniteValue is a named error type for NaN or infinite inputs.
type ErrNonFiniteValue struct {
	Index int     // Position in the value set, or -1 for the target sum
	Value float64 // Offending value
}

// Error returns the error message for a non-finite input.
func (e *ErrNonFiniteValue) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("target sum is not finite: %v", e.Value)
	}
	return fmt.Sprintf("value %d is not finite: %v", e.Index, e.Value)
}
