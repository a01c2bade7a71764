// Package qsubset solves the subset-sum search problem with a Grover-style
// amplitude-amplification search over a simulated quantum register.
//
// Given a list of numeric values and a target sum, the solver finds every
// subset summing to the target, together with the empirical probability of
// measuring it. Values and the negated target are embedded into the
// relative phases of a sum register, an inverse quantum Fourier transform
// moves the encoded sums into amplitude structure, and a bounded number of
// oracle/diffuser iterations amplifies the states whose residual sum is
// zero before measurement.
//
// # Quick Start
//
//	ctx := context.Background()
//	solver, err := qsubset.New([]float64{5, 2, 1}, 3)
//	if err != nil {
//	    panic(err)
//	}
//
//	result, err := solver.Execute(ctx)
//	if err != nil {
//	    panic(err)
//	}
//	for _, s := range result.Subsets {
//	    fmt.Println(s.Values, s.Probability)
//	}
//
// # Execution Modes
//
// By default an in-process dense state-vector simulator samples the
// measurement distribution. For deterministic results without sampling
// noise:
//
//	solver, _ := qsubset.New(values, target, qsubset.WithExactDistribution(true))
//
// Any external executor implementing backend.Backend can be swapped in via
// WithBackend; it receives the assembled circuit and returns raw counts in
// the same shape the simulator produces. ExportCircuit serializes the
// circuit (JSON or MessagePack) for backends living outside the process.
//
// # Caveats
//
// The amplification iteration count is a worst-case heuristic and the
// solution decoder stops at the first non-solution in the
// probability-sorted measurement list. Instances whose true solutions do
// not occupy the top probability tier can therefore come back incomplete;
// see WithIterations for tuning.
package qsubset
