package qsubset

import "github.com/hupe1980/qsubset/quantum"

// buildOracle constructs the marking unitary for one amplification
// iteration.
//
// With the flag qubit prepared in |->, a multi-controlled-X into the flag
// phase-flips exactly the basis states satisfying its control condition.
// Two such flips are composed:
//
//  1. flip states whose sum register is all zero (a zero residual, i.e. the
//     selected values cancel the encoded target exactly)
//  2. flip states whose sum register and index register are both all zero
//
// The second flip undoes the first on the single degenerate state where
// nothing is selected at all, so the net effect marks exactly the
// non-trivial subset-sum matches. The oracle is purely structural: it
// depends only on the layout, never on the values themselves.
func buildOracle(layout Layout) *quantum.Circuit {
	c := quantum.NewCircuit(layout.TotalQubits())

	sums := layout.SumQubits()
	indices := layout.IndexQubits()
	flag := layout.FlagQubit()

	for _, q := range sums {
		c.X(q)
	}
	c.MCX(sums, flag)
	for _, q := range sums {
		c.X(q)
	}

	for _, q := range sums {
		c.X(q)
	}
	for _, q := range indices {
		c.X(q)
	}
	c.MCX(append(append([]int{}, sums...), indices...), flag)
	for _, q := range indices {
		c.X(q)
	}
	for _, q := range sums {
		c.X(q)
	}

	return c
}
