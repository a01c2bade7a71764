package qsubset

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/qsubset/backend"
	"github.com/hupe1980/qsubset/backend/sim"
	"github.com/hupe1980/qsubset/codec"
	"github.com/hupe1980/qsubset/quantum"
)

// Solver is one immutable subset-sum problem instance: a value set and a
// target sum, with the register layout derived at construction.
//
// Each Execute call creates a fresh amplitude store, runs the full
// amplification circuit against the configured backend, and returns an
// execution-scoped Result; nothing mutable is shared across executions, so
// a Solver is safe for concurrent use as long as its backend is.
type Solver struct {
	values []float64
	target float64
	layout Layout
	opts   options
}

// Result is the outcome of one execution.
type Result struct {
	// Subsets are the accepted solutions, ordered by descending
	// probability.
	Subsets []Subset

	// Counts are the raw measurement frequencies as returned by the
	// backend. Nil in exact-distribution mode.
	Counts backend.Counts

	// Distribution is the probability distribution the subsets were
	// extracted from.
	Distribution Distribution
}

// New creates a solver for the given value set and target sum.
func New(values []float64, target float64, optFns ...Option) (*Solver, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValueSet
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ErrNonFiniteValue{Index: i, Value: v}
		}
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, &ErrNonFiniteValue{Index: -1, Value: target}
	}

	opts := options{
		shots:   DefaultShots,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.shots <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShots, opts.shots)
	}
	if opts.iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, opts.iterations)
	}
	if opts.backend == nil {
		var simOpts []sim.Option
		if opts.seed != nil {
			simOpts = append(simOpts, sim.WithSeed(*opts.seed))
		}
		if opts.parallelThreshold != 0 {
			simOpts = append(simOpts, sim.WithParallelThreshold(opts.parallelThreshold))
		}
		opts.backend = sim.New(simOpts...)
	}

	layout, err := newLayout(values, target)
	if err != nil {
		return nil, err
	}

	return &Solver{
		values: slices.Clone(values),
		target: target,
		layout: layout,
		opts:   opts,
	}, nil
}

// Values returns the instance's value set.
func (s *Solver) Values() []float64 { return slices.Clone(s.values) }

// Target returns the instance's target sum.
func (s *Solver) Target() float64 { return s.target }

// Layout returns the derived register layout.
func (s *Solver) Layout() Layout { return s.layout }

// Iterations returns the amplification iteration count an execution will
// use.
func (s *Solver) Iterations() int {
	if s.opts.iterations > 0 {
		return s.opts.iterations
	}
	return defaultIterations(s.layout.NumValues())
}

// BuildCircuit assembles the full amplification circuit: flag preparation,
// phase encoding, and the oracle/diffuser loop. It returns the circuit and
// the qubits to measure (the index register, ascending).
func (s *Solver) BuildCircuit() (*quantum.Circuit, []int, error) {
	start := time.Now()

	c := quantum.NewCircuit(s.layout.TotalQubits())

	// Flag qubit into |-> so the oracle's multi-controlled-X kicks its
	// flip back as a phase.
	c.X(s.layout.FlagQubit())
	c.H(s.layout.FlagQubit())

	enc := newEncoder(s.layout, s.values, s.target)
	if err := c.Append(enc.Circuit()); err != nil {
		return nil, nil, err
	}

	amp, err := newAmplifier(s.layout, enc, s.opts.iterations)
	if err != nil {
		return nil, nil, err
	}
	if err := amp.appendTo(c); err != nil {
		return nil, nil, err
	}

	s.opts.metrics.RecordBuild(c.Len(), time.Since(start))
	s.opts.logger.WithQubits(c.NumQubits()).LogBuild(context.Background(), c.Len(), amp.Iterations())

	return c, s.layout.IndexQubits(), nil
}

// Execute runs the instance against the configured backend and decodes the
// measured distribution into solution subsets.
//
// The returned Result is scoped to this call; repeated executions are
// independent.
func (s *Solver) Execute(ctx context.Context) (*Result, error) {
	start := time.Now()

	result, err := s.execute(ctx)

	shots := s.opts.shots
	if s.opts.exact {
		shots = 0
	}
	solutions := 0
	if result != nil {
		solutions = len(result.Subsets)
	}
	s.opts.metrics.RecordExecute(shots, solutions, time.Since(start), err)
	s.opts.logger.WithShots(shots).LogExecute(ctx, solutions, time.Since(start), err)

	return result, err
}

func (s *Solver) execute(ctx context.Context) (*Result, error) {
	circ, measure, err := s.BuildCircuit()
	if err != nil {
		return nil, err
	}

	var (
		counts backend.Counts
		dist   Distribution
	)

	if s.opts.exact {
		db, ok := s.opts.backend.(backend.DistributionBackend)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrExactDistributionUnsupported, s.opts.backend)
		}
		exact, err := db.Distribution(ctx, circ, measure)
		if err != nil {
			return nil, err
		}
		dist = exact
	} else {
		counts, err = s.opts.backend.Run(ctx, circ, measure, s.opts.shots)
		if err != nil {
			return nil, err
		}
		dist = NormalizeCounts(counts)
	}

	subsets, err := extractSubsets(s.values, s.target, dist)
	if err != nil {
		return nil, err
	}

	return &Result{
		Subsets:      subsets,
		Counts:       counts,
		Distribution: dist,
	}, nil
}

// CircuitExport is the serializable form of an assembled circuit, meant for
// handing to external execution tooling together with the register layout.
type CircuitExport struct {
	NumQubits  int            `json:"num_qubits" msgpack:"num_qubits"`
	Gates      []quantum.Gate `json:"gates" msgpack:"gates"`
	Measure    []int          `json:"measure" msgpack:"measure"`
	SumWidth   int            `json:"sum_width" msgpack:"sum_width"`
	IndexWidth int            `json:"index_width" msgpack:"index_width"`
}

// ExportCircuit assembles the full circuit and serializes it with the given
// codec. If c is nil, codec.Default is used.
func (s *Solver) ExportCircuit(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	circ, measure, err := s.BuildCircuit()
	if err != nil {
		return nil, err
	}

	return c.Marshal(CircuitExport{
		NumQubits:  circ.NumQubits(),
		Gates:      circ.Gates(),
		Measure:    measure,
		SumWidth:   s.layout.SumWidth(),
		IndexWidth: s.layout.IndexWidth(),
	})
}
