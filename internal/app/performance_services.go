package app

import (
	"context"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// performanceService implements the PerformanceService interface
type performanceService struct {
	logger logger.Logger
}

// NewPerformanceService creates a new performanceService instance
func NewPerformanceService(logger logger.Logger) (algorithms.PerformanceService, error) {
	return &performanceService{logger: logger}, nil
}

// Curve returns the synthetic performance curve of algorithm with its chart labels.
func (s *performanceService) Curve(ctx context.Context, algorithm string) (*algorithms.PerformanceReport, error) {
	points, err := algorithms.PerformanceCurve(algorithm)
	if err != nil {
		return nil, err
	}

	return &algorithms.PerformanceReport{
		Algorithm: algorithm,
		Caption:   algorithms.PerformanceCaption,
		AxisX:     algorithms.PerformanceAxisX,
		AxisY:     algorithms.PerformanceAxisY,
		Points:    points,
	}, nil
}
