package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

const bytesPerMiB = 1 << 20

// analysisService implements the AnalysisService interface
type analysisService struct {
	memoryUsage func() string
	logger      logger.Logger
}

// NewAnalysisService creates a new analysisService instance
func NewAnalysisService(logger logger.Logger) (analysis.AnalysisService, error) {
	return &analysisService{
		memoryUsage: heapUsage,
		logger:      logger,
	}, nil
}

// Table builds the comparison table. A non-positive plaintextSize falls back to DefaultPlaintextSize.
func (s *analysisService) Table(ctx context.Context, plaintextSize int, state analysis.SortState) (*analysis.Table, error) {
	if !state.Column.Valid() {
		return nil, fmt.Errorf("%w: %d", analysis.ErrInvalidColumn, int(state.Column))
	}

	if plaintextSize <= 0 {
		plaintextSize = algorithms.DefaultPlaintextSize
	}

	rows, err := analysis.BuildRows(plaintextSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis rows: %w", err)
	}

	if err := analysis.SortRows(rows, state.Column, state.Ascending); err != nil {
		return nil, err
	}

	return &analysis.Table{
		PlaintextSize: plaintextSize,
		Rows:          rows,
		Sort:          state,
		Indicators:    state.Indicators(),
		MemoryUsage:   s.memoryUsage(),
	}, nil
}

// heapUsage reports the allocated heap in MiB with two decimals.
func heapUsage() string {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return fmt.Sprintf("%.2f", float64(stats.HeapAlloc)/bytesPerMiB)
}
