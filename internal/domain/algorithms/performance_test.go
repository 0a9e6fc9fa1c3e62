//go:build unit
// +build unit

package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceCurve(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			points, err := PerformanceCurve(name)
			require.NoError(t, err)
			require.Len(t, points, 64)

			assert.Equal(t, 1, points[0].InputSize)
			assert.Equal(t, 65, points[1].InputSize)
			assert.Equal(t, 4033, points[len(points)-1].InputSize)
		})
	}
}

func TestPerformanceCurve_Formulas(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected float64
	}{
		{AlgorithmAES, 0, 0.323 + 796.85},
		{AlgorithmTripleDES, 1, 0.046*65 + 721.7},
		{AlgorithmRC4, 2, 0.103*129 + 210.331},
		{AlgorithmSHA256, 0, 157.424 - 0.220105 + 0.002187},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := PerformanceCurve(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, points[tt.index].Complexity, 1e-9)
		})
	}
}

func TestPerformanceCurve_UnknownAlgorithm(t *testing.T) {
	points, err := PerformanceCurve("ChaCha20")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Nil(t, points)
}
