package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler defines the interface for handling the comparison table
type AnalysisHandler interface {
	Table(ctx *gin.Context)
}

type analysisHandler struct {
	analysisService analysis.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService analysis.AnalysisService) AnalysisHandler {
	return &analysisHandler{analysisService: analysisService}
}

// Table handles the GET request for the comparison table
// @Summary Retrieve the comparison table
// @Description Key size, reference time and brute-force attempts per algorithm, sorted by a column.
// @Tags Analysis
// @Produce json
// @Param plaintextSize query int false "Plaintext size, defaults to 1000"
// @Param sortBy query string false "Column name or index (name, keySize, timeTaken, bruteForceAttempts)"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {object} AnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Router /analysis [get]
func (handler *analysisHandler) Table(ctx *gin.Context) {
	var query AnalysisQuery

	if plaintextSize := ctx.Query("plaintextSize"); len(plaintextSize) > 0 {
		size, err := httputil.ConvertToInt(plaintextSize)
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
			return
		}
		query.PlaintextSize = size
	}

	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	state := analysis.NewSortState()
	if len(query.SortBy) > 0 {
		column, err := analysis.ParseColumn(query.SortBy)
		if err != nil {
			respondError(ctx, err)
			return
		}
		state.Column = column
	}
	state.Ascending = query.SortOrder != SortOrderDesc

	table, err := handler.analysisService.Table(ctx, query.PlaintextSize, state)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAnalysisResponse(table))
}

func sortOrder(ascending bool) string {
	if ascending {
		return SortOrderAsc
	}
	return SortOrderDesc
}

func newAnalysisResponse(table *analysis.Table) AnalysisResponse {
	rows := make([]AnalysisRowResponse, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, AnalysisRowResponse{
			Algorithm:          row.Algorithm,
			KeySize:            row.KeySize,
			TimeTaken:          row.TimeTaken,
			BruteForceAttempts: row.BruteForceAttempts.String(),
		})
	}

	return AnalysisResponse{
		PlaintextSize: table.PlaintextSize,
		SortBy:        table.Sort.Column.String(),
		SortOrder:     sortOrder(table.Sort.Ascending),
		Indicators:    table.Indicators,
		MemoryUsage:   table.MemoryUsage,
		Rows:          rows,
	}
}
