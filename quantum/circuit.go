package quantum

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrQubitCountMismatch is returned when a circuit is applied or appended to
// something with a different qubit count.
var ErrQubitCountMismatch = errors.New("qubit count mismatch")

// ctxCheckInterval is how many gates are applied between context checks.
const ctxCheckInterval = 64

// GateKind identifies an elementary gate.
type GateKind uint8

const (
	// GateH is the single-qubit Hadamard gate.
	GateH GateKind = iota
	// GateX is the single-qubit Pauli-X gate.
	GateX
	// GateSwap exchanges two qubits.
	GateSwap
	// GateCPhase is a parameterized controlled-phase rotation.
	GateCPhase
	// GateMCX is a multi-controlled Pauli-X.
	GateMCX
)

func (k GateKind) String() string {
	switch k {
	case GateH:
		return "H"
	case GateX:
		return "X"
	case GateSwap:
		return "SWAP"
	case GateCPhase:
		return "CP"
	case GateMCX:
		return "MCX"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Gate is one elementary gate application. Fields are exported so circuits
// can be serialized for external execution backends.
type Gate struct {
	Kind     GateKind `json:"kind" msgpack:"kind"`
	Target   int      `json:"target" msgpack:"target"`
	Other    int      `json:"other,omitempty" msgpack:"other,omitempty"`       // SWAP partner or CPhase control
	Theta    float64  `json:"theta,omitempty" msgpack:"theta,omitempty"`       // CPhase only
	Controls []int    `json:"controls,omitempty" msgpack:"controls,omitempty"` // MCX only
}

// Inverse returns the gate's inverse. H, X, SWAP and MCX are their own
// inverses; a controlled-phase rotation inverts by negating its angle.
func (g Gate) Inverse() Gate {
	if g.Kind == GateCPhase {
		g.Theta = -g.Theta
	}
	return g
}

// apply runs the gate against a state.
func (g Gate) apply(s *State) error {
	switch g.Kind {
	case GateH:
		return s.Hadamard(g.Target)
	case GateX:
		return s.PauliX(g.Target)
	case GateSwap:
		return s.Swap(g.Target, g.Other)
	case GateCPhase:
		return s.CPhase(g.Theta, g.Other, g.Target)
	case GateMCX:
		return s.MCX(g.Controls, g.Target)
	default:
		return fmt.Errorf("unknown gate kind: %d", g.Kind)
	}
}

// Circuit is an ordered sequence of gate applications over a fixed qubit
// count. Building is append-only; once built, applying a circuit is a pure
// in-place transformation of the state it is applied to.
//
// Because every gate records how to invert itself, a circuit is invertible
// by replaying the reversed gate list with each gate inverted. This is what
// lets composite unitaries (the phase-encoding circuit in particular) be
// conjugated rather than treated as opaque black boxes.
type Circuit struct {
	numQubits int
	gates     []Gate
}

// NewCircuit creates an empty circuit over numQubits qubits.
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{numQubits: numQubits}
}

// NumQubits returns the circuit's qubit count.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Len returns the number of elementary gates in the circuit.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the gate sequence.
func (c *Circuit) Gates() []Gate { return slices.Clone(c.gates) }

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateH, Target: q})
	return c
}

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateX, Target: q})
	return c
}

// Swap appends a SWAP of qubits a and b.
func (c *Circuit) Swap(a, b int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateSwap, Target: a, Other: b})
	return c
}

// CPhase appends a controlled-phase rotation of angle theta between control
// and target.
func (c *Circuit) CPhase(theta float64, control, target int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateCPhase, Target: target, Other: control, Theta: theta})
	return c
}

// MCX appends a multi-controlled Pauli-X from controls into target.
// The control slice is copied.
func (c *Circuit) MCX(controls []int, target int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateMCX, Target: target, Controls: slices.Clone(controls)})
	return c
}

// Append appends all gates of other to c. The circuits must agree on qubit
// count.
func (c *Circuit) Append(other *Circuit) error {
	if other.numQubits != c.numQubits {
		return fmt.Errorf("%w: have %d, appending %d", ErrQubitCountMismatch, c.numQubits, other.numQubits)
	}
	c.gates = append(c.gates, other.gates...)
	return nil
}

// Inverse returns a new circuit that exactly undoes c: the gate list
// reversed, with each gate replaced by its inverse.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{
		numQubits: c.numQubits,
		gates:     make([]Gate, len(c.gates)),
	}
	for i, g := range c.gates {
		inv.gates[len(c.gates)-1-i] = g.Inverse()
	}
	return inv
}

// Apply runs the circuit against the state, mutating it in place. Gates are
// applied strictly in order. The context is checked periodically; on
// cancellation the state is left partially transformed and must be
// discarded by the caller.
func (c *Circuit) Apply(ctx context.Context, s *State) error {
	if s.NumQubits() != c.numQubits {
		return fmt.Errorf("%w: circuit %d, state %d", ErrQubitCountMismatch, c.numQubits, s.NumQubits())
	}

	for i, g := range c.gates {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := g.apply(s); err != nil {
			return fmt.Errorf("gate %d (%s): %w", i, g.Kind, err)
		}
	}

	return nil
}
