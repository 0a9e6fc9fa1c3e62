package v1

import (
	"net/http"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"

	"github.com/gin-gonic/gin"
)

// AlgorithmHandler defines the interface for handling algorithm-related operations
type AlgorithmHandler interface {
	List(ctx *gin.Context)
	Performance(ctx *gin.Context)
	Example(ctx *gin.Context)
}

// algorithmHandler struct holds the services
type algorithmHandler struct {
	performanceService algorithms.PerformanceService
	cipherService      ciphers.CipherService
}

// NewAlgorithmHandler creates a new AlgorithmHandler
func NewAlgorithmHandler(performanceService algorithms.PerformanceService, cipherService ciphers.CipherService) AlgorithmHandler {
	return &algorithmHandler{
		performanceService: performanceService,
		cipherService:      cipherService,
	}
}

// List handles the GET request listing all algorithms
// @Summary List algorithms
// @Description List the demonstrated algorithms with key size and standard plaintext size.
// @Tags Algorithm
// @Produce json
// @Success 200 {array} AlgorithmResponse
// @Router /algorithms [get]
func (handler *algorithmHandler) List(ctx *gin.Context) {
	listResponse := []AlgorithmResponse{}
	for _, algorithm := range algorithms.Catalog() {
		listResponse = append(listResponse, AlgorithmResponse{
			Name:                  algorithm.Name,
			KeySize:               algorithm.KeySize,
			StandardPlaintextSize: algorithm.StandardPlaintextSize,
			OneWay:                algorithm.IsHash(),
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Performance handles the GET request for the performance curve of an algorithm
// @Summary Retrieve performance chart data
// @Description Synthetic plaintext size vs time taken curve of an algorithm.
// @Tags Algorithm
// @Produce json
// @Param name path string true "Algorithm name"
// @Success 200 {object} PerformanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /algorithms/{name}/performance [get]
func (handler *algorithmHandler) Performance(ctx *gin.Context) {
	report, err := handler.performanceService.Curve(ctx, ctx.Param("name"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	points := make([]PerformancePointResponse, 0, len(report.Points))
	for _, point := range report.Points {
		points = append(points, PerformancePointResponse{
			InputSize:  point.InputSize,
			Complexity: point.Complexity,
		})
	}

	ctx.JSON(http.StatusOK, PerformanceResponse{
		Algorithm: report.Algorithm,
		Caption:   report.Caption,
		AxisX:     report.AxisX,
		AxisY:     report.AxisY,
		Points:    points,
	})
}

// Example handles the GET request running an algorithm on the fixed example input
// @Summary Run the example
// @Description Encrypt or hash "Hello, World!" with the fixed example key.
// @Tags Algorithm
// @Produce json
// @Param name path string true "Algorithm name"
// @Success 200 {object} ExampleResponse
// @Failure 400 {object} ErrorResponse
// @Router /algorithms/{name}/example [get]
func (handler *algorithmHandler) Example(ctx *gin.Context) {
	result, err := handler.cipherService.RunExample(ctx, ctx.Param("name"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ExampleResponse{
		Algorithm: result.Algorithm,
		Plaintext: result.Plaintext,
		Key:       result.Key,
		Result:    result.Result,
	})
}
