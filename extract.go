package qsubset

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/qsubset/backend"
)

// sumTolerance bounds the floating-point slack when validating a candidate
// subset against the target.
const sumTolerance = 1e-9

// Distribution maps index-register bitstrings to probabilities.
type Distribution map[string]float64

// NormalizeCounts converts raw backend counts into a probability
// distribution.
func NormalizeCounts(counts backend.Counts) Distribution {
	total := counts.Total()
	if total == 0 {
		return Distribution{}
	}

	dist := make(Distribution, len(counts))
	for bits, n := range counts {
		dist[bits] = float64(n) / float64(total)
	}
	return dist
}

// Subset is one accepted solution: the included values in their original
// order, paired with the empirical probability of its bitstring.
type Subset struct {
	Values      []float64
	Probability float64
}

// Sum returns the sum of the subset's values.
func (s Subset) Sum() float64 {
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	return sum
}

// extractSubsets decodes the measured distribution into validated solution
// subsets, ordered by descending probability.
//
// The scan walks bitstrings from most to least probable and stops at the
// first candidate whose values do not sum to the target. This relies on
// amplification pushing every true solution into a probability tier above
// all non-solutions; anything below the first miss is amplification noise.
func extractSubsets(values []float64, target float64, dist Distribution) ([]Subset, error) {
	type entry struct {
		bits string
		prob float64
	}

	entries := make([]entry, 0, len(dist))
	for bits, p := range dist {
		entries = append(entries, entry{bits: bits, prob: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].prob != entries[j].prob {
			return entries[i].prob > entries[j].prob
		}
		return entries[i].bits < entries[j].bits
	})

	var subsets []Subset
	for _, e := range entries {
		subset, err := decodeSubset(values, e.bits)
		if err != nil {
			return nil, err
		}

		var sum float64
		for _, v := range subset {
			sum += v
		}
		if !sumsMatch(sum, target) {
			break
		}

		subsets = append(subsets, Subset{Values: subset, Probability: e.prob})
	}

	return subsets, nil
}

// decodeSubset maps a measured index-register bitstring to the included
// values. The bitstring is most significant qubit first, so its leading
// character is the target qubit; it is dropped, and the remainder is read
// in reverse to align the least significant qubit with the first value.
func decodeSubset(values []float64, bits string) ([]float64, error) {
	if len(bits) != len(values)+1 {
		return nil, fmt.Errorf("%w: %q has width %d, want %d", ErrInvalidBitstring, bits, len(bits), len(values)+1)
	}
	if bits[0] != '0' && bits[0] != '1' {
		return nil, fmt.Errorf("%w: %q contains %q", ErrInvalidBitstring, bits, bits[0])
	}

	subset := make([]float64, 0, len(values))
	for i := range values {
		switch bits[len(bits)-1-i] {
		case '1':
			subset = append(subset, values[i])
		case '0':
		default:
			return nil, fmt.Errorf("%w: %q contains %q", ErrInvalidBitstring, bits, bits[len(bits)-1-i])
		}
	}

	return subset, nil
}

// sumsMatch compares a candidate sum against the target with relative
// floating-point tolerance.
func sumsMatch(sum, target float64) bool {
	return math.Abs(sum-target) <= sumTolerance*math.Max(1, math.Abs(target))
}
