package qsubset

import (
	"math"

	"github.com/hupe1980/qsubset/quantum"
)

// defaultIterations returns the default amplification iteration count,
// floor(sqrt(2^n)) for n values.
//
// This is a worst-case heuristic matched to the amplified subspace being at
// most the power set of the values. Truncation matters: rounding up
// over-rotates multi-solution instances past the amplitude peak, dropping
// solutions below the noise tier. The count does not adapt to the number of
// solutions, which is unknown a priori; callers can override it via
// WithIterations.
func defaultIterations(numValues int) int {
	return int(math.Sqrt(math.Exp2(float64(numValues))))
}

// amplifier composes the oracle and diffuser once and replays the pair a
// fixed number of times.
type amplifier struct {
	oracle     *quantum.Circuit
	diffuser   *quantum.Circuit
	iterations int
}

// newAmplifier builds the reusable oracle/diffuser pair. iterations <= 0
// selects the default heuristic count.
func newAmplifier(layout Layout, enc *encoder, iterations int) (*amplifier, error) {
	if iterations <= 0 {
		iterations = defaultIterations(layout.NumValues())
	}

	diff, err := buildDiffuser(layout, enc)
	if err != nil {
		return nil, err
	}

	return &amplifier{
		oracle:     buildOracle(layout),
		diffuser:   diff,
		iterations: iterations,
	}, nil
}

// Iterations returns the number of oracle/diffuser pairs the amplifier
// appends.
func (a *amplifier) Iterations() int { return a.iterations }

// appendTo appends the full amplification sequence to the circuit.
func (a *amplifier) appendTo(c *quantum.Circuit) error {
	for i := 0; i < a.iterations; i++ {
		if err := c.Append(a.oracle); err != nil {
			return err
		}
		if err := c.Append(a.diffuser); err != nil {
			return err
		}
	}
	return nil
}
