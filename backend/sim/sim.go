// Package sim provides the in-process dense state-vector execution backend.
//
// It runs a circuit against a fresh amplitude store, derives the probability
// distribution over the measured qubits by a partial trace, and either
// samples a configurable number of shots from it or exposes the exact
// distribution for deterministic use. The store is created per run and
// discarded afterwards; no state is shared across executions.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/qsubset/backend"
	"github.com/hupe1980/qsubset/quantum"
)

// Simulator is a local execution backend. It implements backend.Backend and
// backend.DistributionBackend.
//
// Simulator is safe for concurrent use when no seed is configured; with a
// fixed seed, concurrent Run calls race on the shared generator and should
// be serialized by the caller.
type Simulator struct {
	rng               *rand.Rand
	parallelThreshold int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed fixes the sampling seed for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithParallelThreshold sets the minimum state-vector length before gate
// kernels parallelize. Zero keeps the quantum package default; negative
// disables parallelism.
func WithParallelThreshold(n int) Option {
	return func(s *Simulator) {
		s.parallelThreshold = n
	}
}

// New creates a Simulator.
func New(optFns ...Option) *Simulator {
	s := &Simulator{}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Run executes the circuit and draws shots samples from the measured
// distribution.
func (s *Simulator) Run(ctx context.Context, circ *quantum.Circuit, measure []int, shots int) (backend.Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("%w: %d", backend.ErrInvalidShots, shots)
	}

	probs, err := s.trace(ctx, circ, measure)
	if err != nil {
		return nil, err
	}

	var src rand.Source = s.rng
	if s.rng == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	cat := distuv.NewCategorical(probs, src)

	counts := make(backend.Counts)
	for i := 0; i < shots; i++ {
		outcome := int(cat.Rand())
		counts[bitstring(outcome, len(measure))]++
	}

	return counts, nil
}

// Distribution executes the circuit and returns the exact probability
// distribution over the measured qubits. Outcomes with zero probability are
// omitted.
func (s *Simulator) Distribution(ctx context.Context, circ *quantum.Circuit, measure []int) (map[string]float64, error) {
	probs, err := s.trace(ctx, circ, measure)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]float64)
	for outcome, p := range probs {
		if p > 0 {
			dist[bitstring(outcome, len(measure))] = p
		}
	}

	return dist, nil
}

// trace runs the circuit on a fresh state and sums squared amplitude
// magnitudes over all unmeasured qubits for each assignment of the measured
// ones. The result is indexed by the outcome integer, where bit k
// corresponds to measure[k].
func (s *Simulator) trace(ctx context.Context, circ *quantum.Circuit, measure []int) ([]float64, error) {
	for _, q := range measure {
		if q < 0 || q >= circ.NumQubits() {
			return nil, fmt.Errorf("%w: qubit %d of %d", backend.ErrInvalidMeasureQubit, q, circ.NumQubits())
		}
	}

	var stateOpts []quantum.StateOption
	if s.parallelThreshold != 0 {
		stateOpts = append(stateOpts, quantum.WithParallelThreshold(s.parallelThreshold))
	}

	state := quantum.NewState(circ.NumQubits(), stateOpts...)
	if err := circ.Apply(ctx, state); err != nil {
		return nil, err
	}

	probs := make([]float64, 1<<len(measure))
	for i := 0; i < state.Len(); i++ {
		outcome := 0
		for k, q := range measure {
			outcome |= (i >> q & 1) << k
		}
		probs[outcome] += state.Probability(i)
	}

	return probs, nil
}

// bitstring renders an outcome integer as a fixed-width binary string, most
// significant measured qubit first.
func bitstring(outcome, width int) string {
	var b strings.Builder
	b.Grow(width)
	for k := width - 1; k >= 0; k-- {
		if outcome>>k&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
