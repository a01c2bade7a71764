package quantum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrControlIsTarget is returned when a controlled gate lists its target
// qubit among its controls.
var ErrControlIsTarget = errors.New("control qubit equals target qubit")

// DefaultParallelThreshold is the minimum state-vector length before gate
// kernels fan out across goroutines. Below this, the goroutine overhead
// outweighs the parallel speedup.
const DefaultParallelThreshold = 1 << 14

// ErrQubitOutOfRange is a named error type for qubit indexes outside the
// register bounds. It always signals a construction defect in the caller,
// never a recoverable runtime state.
type ErrQubitOutOfRange struct {
	Qubit     int // Offending qubit index
	NumQubits int // Total qubits in the state
}

// Error returns the error message for an out-of-range qubit.
func (e *ErrQubitOutOfRange) Error() string {
	return fmt.Sprintf("qubit %d out of range [0,%d)", e.Qubit, e.NumQubits)
}

// State is a dense state vector over a fixed number of qubits.
//
// The amplitude slice is a single contiguous buffer of length 2^n indexed by
// the integer encoding of the basis state (qubit 0 = least significant bit).
// All gate kernels mutate it in place.
//
// State is not safe for concurrent use; gate applications within one
// execution are strictly ordered.
type State struct {
	amps              []complex128
	numQubits         int
	parallelThreshold int
}

// StateOption configures a State.
type StateOption func(*State)

// WithParallelThreshold sets the minimum amplitude count before kernels
// parallelize. Values <= 0 disable parallelism entirely.
func WithParallelThreshold(n int) StateOption {
	return func(s *State) {
		if n <= 0 {
			n = math.MaxInt
		}
		s.parallelThreshold = n
	}
}

// NewState creates a state initialized to the all-zero basis state:
// amplitude 1 at index 0, 0 elsewhere.
func NewState(numQubits int, optFns ...StateOption) *State {
	s := &State{
		amps:              make([]complex128, 1<<numQubits),
		numQubits:         numQubits,
		parallelThreshold: DefaultParallelThreshold,
	}
	s.amps[0] = 1

	for _, fn := range optFns {
		fn(s)
	}

	return s
}

// NumQubits returns the number of qubits in the state.
func (s *State) NumQubits() int { return s.numQubits }

// Len returns the number of amplitudes (2^NumQubits).
func (s *State) Len() int { return len(s.amps) }

// Amplitude returns the amplitude of basis state i.
func (s *State) Amplitude(i int) complex128 { return s.amps[i] }

// SetAmplitude overwrites the amplitude of basis state i.
// Intended for constructing known states in tests; callers are responsible
// for keeping the state normalized.
func (s *State) SetAmplitude(i int, a complex128) { s.amps[i] = a }

// Probability returns the squared magnitude of the amplitude of basis
// state i.
func (s *State) Probability(i int) float64 {
	a := s.amps[i]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Norm returns the total probability, i.e. the sum of squared amplitude
// magnitudes. It is 1 within floating-point tolerance for any state reached
// through NewState and gate applications; a larger deviation indicates a
// defect, not a legal runtime state.
func (s *State) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

func (s *State) checkQubit(q int) error {
	if q < 0 || q >= s.numQubits {
		return &ErrQubitOutOfRange{Qubit: q, NumQubits: s.numQubits}
	}
	return nil
}

// parallelFor runs fn over [0,n) in contiguous chunks, fanning out across
// GOMAXPROCS goroutines when the state is large enough. fn must only touch
// indexes it can reach from its own range (kernels process each amplitude
// pair from its canonical member, so disjoint ranges never write the same
// element).
func (s *State) parallelFor(n int, fn func(start, end int)) {
	if n < s.parallelThreshold {
		fn(0, n)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait() // kernels never fail
}

// Hadamard applies the Hadamard gate to qubit q.
func (s *State) Hadamard(q int) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}

	const invSqrt2 = 1 / math.Sqrt2
	f := complex(invSqrt2, 0)
	bit := 1 << q

	s.parallelFor(len(s.amps), func(start, end int) {
		for i := start; i < end; i++ {
			if i&bit == 0 {
				j := i | bit
				ai, aj := s.amps[i], s.amps[j]
				s.amps[i] = f * (ai + aj)
				s.amps[j] = f * (ai - aj)
			}
		}
	})

	return nil
}

// PauliX applies the Pauli-X (NOT) gate to qubit q.
func (s *State) PauliX(q int) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}

	bit := 1 << q

	s.parallelFor(len(s.amps), func(start, end int) {
		for i := start; i < end; i++ {
			if i&bit == 0 {
				j := i | bit
				s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
			}
		}
	})

	return nil
}

// CPhase applies a controlled-phase rotation of angle theta between qubits
// control and target: amplitudes of basis states where both bits are 1 are
// multiplied by e^(i*theta). The gate is symmetric in its two qubits.
func (s *State) CPhase(theta float64, control, target int) error {
	if err := s.checkQubit(control); err != nil {
		return err
	}
	if err := s.checkQubit(target); err != nil {
		return err
	}

	phase := cmplx.Exp(complex(0, theta))
	mask := 1<<control | 1<<target

	s.parallelFor(len(s.amps), func(start, end int) {
		for i := start; i < end; i++ {
			if i&mask == mask {
				s.amps[i] *= phase
			}
		}
	})

	return nil
}

// Swap exchanges qubits a and b.
func (s *State) Swap(a, b int) error {
	if err := s.checkQubit(a); err != nil {
		return err
	}
	if err := s.checkQubit(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}

	bitA, bitB := 1<<a, 1<<b

	s.parallelFor(len(s.amps), func(start, end int) {
		for i := start; i < end; i++ {
			if i&bitA != 0 && i&bitB == 0 {
				j := i&^bitA | bitB
				s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
			}
		}
	})

	return nil
}

// MCX applies a multi-controlled Pauli-X: the target bit is flipped on
// basis states where every control qubit is 1. An empty control set
// degenerates to a plain Pauli-X.
func (s *State) MCX(controls []int, target int) error {
	if err := s.checkQubit(target); err != nil {
		return err
	}

	ctrlMask := 0
	for _, c := range controls {
		if err := s.checkQubit(c); err != nil {
			return err
		}
		if c == target {
			return fmt.Errorf("%w: qubit %d", ErrControlIsTarget, c)
		}
		ctrlMask |= 1 << c
	}

	bit := 1 << target

	s.parallelFor(len(s.amps), func(start, end int) {
		for i := start; i < end; i++ {
			if i&bit == 0 && i&ctrlMask == ctrlMask {
				j := i | bit
				s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
			}
		}
	})

	return nil
}
