package algorithms

import "context"

// PerformanceReport bundles a performance curve with its chart labels
type PerformanceReport struct {
	Algorithm string
	Caption   string
	AxisX     string
	AxisY     string
	Points    []PerformancePoint
}

// PerformanceService defines methods for retrieving synthetic performance data.
type PerformanceService interface {
	// Curve returns the performance report of the named algorithm.
	Curve(ctx context.Context, algorithm string) (*PerformanceReport, error)
}
