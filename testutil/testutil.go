// Package testutil provides testing utilities for qsubset.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe random number generator for reproducible gate sequences and
// helpers for comparing value subsets independent of order.
package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Angle returns a pseudo-random phase angle in [-pi, pi).
func (r *RNG) Angle() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (r.rand.Float64()*2 - 1) * 3.141592653589793
}

// SameSubset reports whether two value subsets contain the same values
// regardless of order.
func SameSubset(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

// ContainsSubset reports whether subsets contains a subset with exactly the
// given values, regardless of order.
func ContainsSubset(subsets [][]float64, want []float64) bool {
	for _, s := range subsets {
		if SameSubset(s, want) {
			return true
		}
	}
	return false
}
