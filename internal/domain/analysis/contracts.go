package analysis

import "context"

// Table is a rendered comparison table
type Table struct {
	PlaintextSize int
	Rows          []Row
	Sort          SortState
	Indicators    []string
	MemoryUsage   string
}

// AnalysisService defines methods for producing the comparison table.
type AnalysisService interface {
	// Table builds the table for plaintextSize sorted according to state.
	Table(ctx context.Context, plaintextSize int, state SortState) (*Table, error)
}
