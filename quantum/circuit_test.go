package quantum

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBuild(t *testing.T) {
	c := NewCircuit(3)
	c.H(0).X(1).Swap(0, 2).CPhase(math.Pi/4, 0, 1).MCX([]int{0, 1}, 2)

	require.Equal(t, 5, c.Len())
	assert.Equal(t, 3, c.NumQubits())

	gates := c.Gates()
	assert.Equal(t, GateH, gates[0].Kind)
	assert.Equal(t, GateX, gates[1].Kind)
	assert.Equal(t, GateSwap, gates[2].Kind)
	assert.Equal(t, GateCPhase, gates[3].Kind)
	assert.Equal(t, GateMCX, gates[4].Kind)

	// Gates returns a copy.
	gates[0].Kind = GateX
	assert.Equal(t, GateH, c.Gates()[0].Kind)
}

func TestGateInverse(t *testing.T) {
	tests := []struct {
		name string
		gate Gate
		want Gate
	}{
		{"H", Gate{Kind: GateH, Target: 1}, Gate{Kind: GateH, Target: 1}},
		{"X", Gate{Kind: GateX, Target: 0}, Gate{Kind: GateX, Target: 0}},
		{"Swap", Gate{Kind: GateSwap, Target: 0, Other: 2}, Gate{Kind: GateSwap, Target: 0, Other: 2}},
		{"CPhase", Gate{Kind: GateCPhase, Target: 1, Other: 0, Theta: 0.5}, Gate{Kind: GateCPhase, Target: 1, Other: 0, Theta: -0.5}},
		{"MCX", Gate{Kind: GateMCX, Target: 2, Controls: []int{0, 1}}, Gate{Kind: GateMCX, Target: 2, Controls: []int{0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gate.Inverse())
		})
	}
}

func TestCircuitInverse(t *testing.T) {
	ctx := context.Background()

	c := NewCircuit(4)
	for q := 0; q < 4; q++ {
		c.H(q)
	}
	c.CPhase(0.3, 0, 1).CPhase(-1.1, 2, 3).Swap(1, 2).X(0).MCX([]int{0, 1, 2}, 3)

	s := NewState(4)
	require.NoError(t, c.Apply(ctx, s))
	require.NoError(t, c.Inverse().Apply(ctx, s))

	assert.InDelta(t, 1, real(s.Amplitude(0)), 1e-9)
	assert.InDelta(t, 0, imag(s.Amplitude(0)), 1e-9)
	for i := 1; i < s.Len(); i++ {
		assert.InDelta(t, 0, real(s.Amplitude(i)), 1e-9)
		assert.InDelta(t, 0, imag(s.Amplitude(i)), 1e-9)
	}
}

func TestCircuitAppend(t *testing.T) {
	a := NewCircuit(2)
	a.H(0)

	b := NewCircuit(2)
	b.X(1)

	require.NoError(t, a.Append(b))
	assert.Equal(t, 2, a.Len())

	mismatch := NewCircuit(3)
	require.ErrorIs(t, a.Append(mismatch), ErrQubitCountMismatch)
}

func TestCircuitApply(t *testing.T) {
	t.Run("QubitCountMismatch", func(t *testing.T) {
		c := NewCircuit(2)
		c.H(0)

		s := NewState(3)
		require.ErrorIs(t, c.Apply(context.Background(), s), ErrQubitCountMismatch)
	})

	t.Run("Cancellation", func(t *testing.T) {
		c := NewCircuit(1)
		c.H(0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := NewState(1)
		require.ErrorIs(t, c.Apply(ctx, s), context.Canceled)
	})
}
