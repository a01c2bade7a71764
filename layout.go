package qsubset

import (
	"fmt"
	"math"
)

// minSumWidth is the smallest sum-register width: one qubit for the value
// plus the guard bit.
const minSumWidth = 2

// Layout describes the three disjoint, contiguous qubit ranges of a problem
// instance: the sum register starting at qubit 0, the index register above
// it, and the flag qubit on top. It is derived once at construction and
// immutable thereafter.
//
// Qubit 0 is the least significant bit of the basis-state encoding.
type Layout struct {
	numValues int
	sumWidth  int
}

// newLayout derives the register layout for a value set and target sum.
//
// The sum-register width is ceil(log2(sum of |values|)) + 1. Using the
// magnitude sum rather than the raw sum keeps the logarithm defined for
// instances with negative values; the raw sum plus target is still required
// to be non-zero because it is the phase-normalization base.
func newLayout(values []float64, target float64) (Layout, error) {
	var magSum, rawSum float64
	for _, v := range values {
		magSum += math.Abs(v)
		rawSum += v
	}

	if magSum == 0 {
		return Layout{}, fmt.Errorf("%w: all values are zero", ErrDegenerateNormalization)
	}
	if rawSum+target == 0 {
		return Layout{}, fmt.Errorf("%w: sum of values plus target is zero", ErrDegenerateNormalization)
	}

	width := int(math.Ceil(math.Log2(magSum))) + 1
	if width < minSumWidth {
		width = minSumWidth
	}

	return Layout{numValues: len(values), sumWidth: width}, nil
}

// NumValues returns the number of values in the instance.
func (l Layout) NumValues() int { return l.numValues }

// SumWidth returns the width of the sum register.
func (l Layout) SumWidth() int { return l.sumWidth }

// IndexWidth returns the width of the index register: one qubit per value
// plus one for the target sum.
func (l Layout) IndexWidth() int { return l.numValues + 1 }

// TotalQubits returns the full register size including the flag qubit.
func (l Layout) TotalQubits() int { return l.sumWidth + l.IndexWidth() + 1 }

// SumQubit returns the global index of the k-th sum qubit (k = 0 is least
// significant).
func (l Layout) SumQubit(k int) int { return k }

// IndexQubit returns the global index of the k-th index qubit. Qubits
// 0..NumValues-1 correspond to values in order; qubit NumValues carries the
// negated target sum.
func (l Layout) IndexQubit(k int) int { return l.sumWidth + k }

// TargetQubit returns the global index of the index qubit that encodes the
// negated target sum.
func (l Layout) TargetQubit() int { return l.IndexQubit(l.numValues) }

// FlagQubit returns the global index of the amplification flag qubit.
func (l Layout) FlagQubit() int { return l.sumWidth + l.IndexWidth() }

// SumQubits returns the global indexes of the sum register, ascending.
func (l Layout) SumQubits() []int {
	qs := make([]int, l.sumWidth)
	for k := range qs {
		qs[k] = l.SumQubit(k)
	}
	return qs
}

// IndexQubits returns the global indexes of the index register, ascending.
func (l Layout) IndexQubits() []int {
	qs := make([]int, l.IndexWidth())
	for k := range qs {
		qs[k] = l.IndexQubit(k)
	}
	return qs
}
