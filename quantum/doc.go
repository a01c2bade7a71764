// Package quantum provides a dense state-vector simulator core.
//
// The package has two building blocks:
//
//   - State: a flat complex amplitude vector over n qubits with in-place
//     gate kernels (Hadamard, Pauli-X, controlled-phase, SWAP,
//     multi-controlled-X)
//   - Circuit: an ordered, invertible sequence of gate applications over a
//     fixed qubit count
//
// Basis states are indexed by their integer encoding with qubit 0 as the
// least significant bit. Every kernel is unitary, so the total probability
// of a State is preserved by construction; State.Norm exists so callers can
// assert this.
//
// Gate kernels are data-parallel across basis-state pairs and fan out across
// CPU cores for large state vectors. This is transparent to callers: gates
// within one circuit are always applied in order.
package quantum
