//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnalysisService(t *testing.T) analysis.AnalysisService {
	t.Helper()
	service, err := NewAnalysisService(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return service
}

func rowNames(rows []analysis.Row) []string {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Algorithm
	}
	return names
}

func TestAnalysisService_Table(t *testing.T) {
	service := setupAnalysisService(t)
	ctx := context.Background()

	t.Run("DefaultState", func(t *testing.T) {
		table, err := service.Table(ctx, 0, analysis.NewSortState())
		require.NoError(t, err)

		assert.Equal(t, algorithms.DefaultPlaintextSize, table.PlaintextSize)
		assert.Equal(t, []string{"3DES", "AES", "RC4", "SHA-256"}, rowNames(table.Rows))
		assert.Equal(t, []string{analysis.IndicatorAscending, "", "", ""}, table.Indicators)
		assert.NotEmpty(t, table.MemoryUsage)
	})

	t.Run("TimeTakenDescending", func(t *testing.T) {
		state := analysis.SortState{Column: analysis.ColumnTimeTaken, Ascending: false}
		table, err := service.Table(ctx, 13, state)
		require.NoError(t, err)

		assert.Equal(t, 13, table.PlaintextSize)
		assert.Equal(t, []string{"AES", "3DES", "SHA-256", "RC4"}, rowNames(table.Rows))
		assert.Equal(t, []string{"", "", analysis.IndicatorDescending, ""}, table.Indicators)
	})

	t.Run("BruteForceAscending", func(t *testing.T) {
		state := analysis.SortState{Column: analysis.ColumnBruteForceAttempts, Ascending: true}
		table, err := service.Table(ctx, 100, state)
		require.NoError(t, err)

		assert.Equal(t, []string{"RC4", "3DES", "AES", "SHA-256"}, rowNames(table.Rows))
		assert.Equal(t, "3.40e38", table.Rows[0].BruteForceAttempts.String())
		assert.Equal(t, "1.16e77", table.Rows[3].BruteForceAttempts.String())
	})

	t.Run("InvalidColumn", func(t *testing.T) {
		_, err := service.Table(ctx, 0, analysis.SortState{Column: 7})
		assert.ErrorIs(t, err, analysis.ErrInvalidColumn)
	})
}

func TestAnalysisService_MemoryUsage(t *testing.T) {
	service := &analysisService{memoryUsage: func() string { return "1.50" }}

	table, err := service.Table(context.Background(), 1, analysis.NewSortState())
	require.NoError(t, err)
	assert.Equal(t, "1.50", table.MemoryUsage)

	assert.Regexp(t, `^\d+\.\d{2}$`, heapUsage())
}
