package qsubset

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/qsubset/quantum"
)

// encoder holds the phase-encoding composite unitary for one problem
// instance.
//
// The circuit places every sum and index qubit into uniform superposition,
// imprints each value's contribution into the relative phase of the sum
// register controlled by that value's index qubit, imprints the negated
// target sum the same way on the last index qubit, and finally applies the
// inverse quantum Fourier transform to the sum register so that subset sums
// move out of the phase domain: basis states whose selected values cancel
// the target exactly end with an all-zero sum register.
//
// The circuit is kept as an explicit gate sequence rather than being applied
// and discarded because the diffuser needs its exact inverse every
// iteration.
type encoder struct {
	layout  Layout
	circuit *quantum.Circuit
}

// newEncoder builds the encoding circuit for the given instance. The layout
// must have been derived from the same values and target.
func newEncoder(layout Layout, values []float64, target float64) *encoder {
	// Values and target are scaled by the reciprocal of their joint sum,
	// mapping each into relative phase space. The base is non-zero by
	// layout construction.
	base := floats.Sum(values) + target

	c := quantum.NewCircuit(layout.TotalQubits())

	for _, q := range layout.SumQubits() {
		c.H(q)
	}
	for _, q := range layout.IndexQubits() {
		c.H(q)
	}

	for i, v := range values {
		encodePhase(c, layout, v/base, layout.IndexQubit(i))
	}

	// The target enters with negative phase so that subset sums equal to it
	// cancel to zero, which the oracle can then recognize independently of
	// the actual target value.
	encodePhase(c, layout, -target/base, layout.TargetQubit())

	appendInverseQFT(c, layout.SumQubits())

	return &encoder{layout: layout, circuit: c}
}

// Circuit returns the encoding unitary.
func (e *encoder) Circuit() *quantum.Circuit { return e.circuit }

// encodePhase writes one normalized value into the sum register, associated
// with the given index qubit: a ladder of controlled-phase rotations with
// angle 2*pi*value*2^k on the k-th sum qubit.
func encodePhase(c *quantum.Circuit, layout Layout, value float64, indexQubit int) {
	theta := 2 * math.Pi * value
	power := 1.0
	for k := 0; k < layout.SumWidth(); k++ {
		c.CPhase(theta*power, layout.SumQubit(k), indexQubit)
		power *= 2
	}
}

// appendInverseQFT appends the inverse quantum Fourier transform over the
// given qubits: reverse the qubit order with swaps, then for each qubit from
// least to most significant apply the cascade of negative controlled-phase
// rotations followed by a Hadamard.
func appendInverseQFT(c *quantum.Circuit, qubits []int) {
	n := len(qubits)

	for q := 0; q < n/2; q++ {
		c.Swap(qubits[q], qubits[n-1-q])
	}

	for j := 0; j < n; j++ {
		for m := 0; m < j; m++ {
			c.CPhase(-math.Pi/float64(int(1)<<(j-m)), qubits[m], qubits[j])
		}
		c.H(qubits[j])
	}
}
