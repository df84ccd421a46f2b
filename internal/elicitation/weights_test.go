package elicitation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPSRWeights_Valid(t *testing.T) {
	w, err := NewPSRWeights([]float64{3, 1, 0})
	require.NoError(t, err, "non-increasing non-negative vector should construct")

	assert.Equal(t, 3, w.Size())
	assert.False(t, w.IsZero())
	assert.Equal(t, []float64{3, 1, 0}, w.Values())
}

func TestNewPSRWeights_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr error
	}{
		{name: "empty vector", values: nil},
		{name: "negative weight", values: []float64{1, -0.5}},
		{name: "increasing weights", values: []float64{1, 2}, wantErr: ErrWeightOrder},
		{name: "NaN weight", values: []float64{1, math.NaN()}},
		{name: "infinite weight", values: []float64{math.Inf(1), 1}, wantErr: ErrNonFiniteWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewPSRWeights(tt.values)
			require.Error(t, err, "construction should fail")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.True(t, w.IsZero(), "no partially-built vector should escape")
		})
	}
}

func TestPSRWeights_WeightAtRank(t *testing.T) {
	w, err := NewPSRWeights([]float64{3, 1, 0})
	require.NoError(t, err)

	got, err := w.WeightAtRank(1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got, "rank 1 should map to the first weight")

	got, err = w.WeightAtRank(3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "rank 3 should map to the last weight")

	_, err = w.WeightAtRank(0)
	assert.ErrorIs(t, err, ErrRankOutOfRange, "rank 0 is outside the domain")

	_, err = w.WeightAtRank(4)
	assert.ErrorIs(t, err, ErrRankOutOfRange, "rank past the vector is outside the domain")
}

func TestPSRWeights_Immutable(t *testing.T) {
	input := []float64{3, 1, 0}
	w, err := NewPSRWeights(input)
	require.NoError(t, err)

	input[0] = 99
	assert.Equal(t, []float64{3, 1, 0}, w.Values(), "construction should copy the input")

	out := w.Values()
	out[0] = 99
	assert.Equal(t, []float64{3, 1, 0}, w.Values(), "accessor should return a copy")
}

func TestPSRWeights_Equal(t *testing.T) {
	w1, err := NewPSRWeights([]float64{3, 1, 0})
	require.NoError(t, err)
	w2, err := NewPSRWeights([]float64{3, 1, 0})
	require.NoError(t, err)
	w3, err := NewPSRWeights([]float64{3, 1})
	require.NoError(t, err)

	assert.True(t, w1.Equal(w2), "same values should be equal")
	assert.False(t, w1.Equal(w3), "different lengths should not be equal")
}

func TestPSRWeights_String(t *testing.T) {
	w, err := NewPSRWeights([]float64{3, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, "PSRWeights[3 1 0]", w.String())
}
