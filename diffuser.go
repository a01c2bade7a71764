package qsubset

import "github.com/hupe1980/qsubset/quantum"

// buildDiffuser constructs the amplitude-amplification reflection for the
// given encoding unitary.
//
// The reflection is about the encoded reference state rather than the
// computational uniform superposition: the encoder's inverse is applied
// first, then the invert-flip-invert multi-controlled-X marks the all-zero
// state, then the encoder is reapplied. The returned circuit is therefore
// only valid together with the encoder instance it was built from.
func buildDiffuser(layout Layout, enc *encoder) (*quantum.Circuit, error) {
	c := quantum.NewCircuit(layout.TotalQubits())

	if err := c.Append(enc.Circuit().Inverse()); err != nil {
		return nil, err
	}

	sums := layout.SumQubits()
	indices := layout.IndexQubits()

	for _, q := range sums {
		c.X(q)
	}
	for _, q := range indices {
		c.X(q)
	}
	c.MCX(append(append([]int{}, sums...), indices...), layout.FlagQubit())
	for _, q := range indices {
		c.X(q)
	}
	for _, q := range sums {
		c.X(q)
	}

	if err := c.Append(enc.Circuit()); err != nil {
		return nil, err
	}

	return c, nil
}
