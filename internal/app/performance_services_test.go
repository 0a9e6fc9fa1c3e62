//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceService_Curve(t *testing.T) {
	service, err := NewPerformanceService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	report, err := service.Curve(context.Background(), algorithms.AlgorithmAES)
	require.NoError(t, err)

	assert.Equal(t, algorithms.AlgorithmAES, report.Algorithm)
	assert.Equal(t, algorithms.PerformanceCaption, report.Caption)
	assert.Equal(t, algorithms.PerformanceAxisX, report.AxisX)
	assert.Equal(t, algorithms.PerformanceAxisY, report.AxisY)
	require.Len(t, report.Points, 64)
	assert.Equal(t, 1, report.Points[0].InputSize)
	assert.InDelta(t, 797.173, report.Points[0].Complexity, 1e-9)
	assert.Equal(t, 4033, report.Points[63].InputSize)

	_, err = service.Curve(context.Background(), "Blowfish")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}
