package qsubset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qsubset/backend/sim"
	"github.com/hupe1980/qsubset/quantum"
)

func TestEncoderInvertibility(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		target float64
	}{
		{"SmallSet", []float64{5, 2, 1}, 3},
		{"TargetInSet", []float64{1, 3, 6, 4, 2}, 6},
		{"NegativeValue", []float64{1, -3, 7}, 5},
		{"Fractional", []float64{0.5, 0.25}, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := newLayout(tt.values, tt.target)
			require.NoError(t, err)

			enc := newEncoder(layout, tt.values, tt.target)

			ctx := context.Background()
			s := quantum.NewState(layout.TotalQubits())
			require.NoError(t, enc.Circuit().Apply(ctx, s))
			require.NoError(t, enc.Circuit().Inverse().Apply(ctx, s))

			assert.InDelta(t, 1, real(s.Amplitude(0)), 1e-6)
			assert.InDelta(t, 0, imag(s.Amplitude(0)), 1e-6)
			assert.InDelta(t, 1, s.Norm(), 1e-6)
		})
	}
}

// The encoder leaves every index-register bitstring equally likely: index
// qubits only receive Hadamards and phase rotations, so their marginal
// distribution stays uniform until amplification.
func TestEncoderUniformIndexMarginal(t *testing.T) {
	values := []float64{5, 2, 1}
	layout, err := newLayout(values, 3)
	require.NoError(t, err)

	enc := newEncoder(layout, values, 3)

	dist, err := sim.New().Distribution(context.Background(), enc.Circuit(), layout.IndexQubits())
	require.NoError(t, err)

	want := 1.0 / float64(int(1)<<layout.IndexWidth())
	require.Len(t, dist, 1<<layout.IndexWidth())
	for bits, p := range dist {
		assert.InDeltaf(t, want, p, 1e-9, "bitstring %s", bits)
	}
}

func TestEncoderNormPreserved(t *testing.T) {
	values := []float64{1, -3, 7}
	layout, err := newLayout(values, 5)
	require.NoError(t, err)

	enc := newEncoder(layout, values, 5)

	s := quantum.NewState(layout.TotalQubits())
	require.NoError(t, enc.Circuit().Apply(context.Background(), s))

	assert.InDelta(t, 1, s.Norm(), 1e-6)
}
