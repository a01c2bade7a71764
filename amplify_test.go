package qsubset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qsubset/quantum"
)

func TestDefaultIterations(t *testing.T) {
	tests := []struct {
		numValues int
		want      int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 4},
		{5, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultIterations(tt.numValues))
	}
}

func TestAmplifier(t *testing.T) {
	values := []float64{5, 2, 1}
	layout, err := newLayout(values, 3)
	require.NoError(t, err)

	enc := newEncoder(layout, values, 3)

	t.Run("DefaultIterations", func(t *testing.T) {
		amp, err := newAmplifier(layout, enc, 0)
		require.NoError(t, err)
		assert.Equal(t, defaultIterations(3), amp.Iterations())
	})

	t.Run("ExplicitIterations", func(t *testing.T) {
		amp, err := newAmplifier(layout, enc, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, amp.Iterations())

		c := quantum.NewCircuit(layout.TotalQubits())
		require.NoError(t, amp.appendTo(c))
		assert.Equal(t, 2*(amp.oracle.Len()+amp.diffuser.Len()), c.Len())
	})

	t.Run("DiffuserConjugatesEncoder", func(t *testing.T) {
		amp, err := newAmplifier(layout, enc, 1)
		require.NoError(t, err)

		// The diffuser embeds the encoder's inverse and the encoder itself
		// around the reflection.
		encLen := enc.Circuit().Len()
		gates := amp.diffuser.Gates()
		require.Greater(t, len(gates), 2*encLen)

		encGates := enc.Circuit().Gates()
		assert.Equal(t, encGates[0].Inverse(), gates[encLen-1])
		assert.Equal(t, encGates, gates[len(gates)-encLen:])
	})
}
