package v1

import (
	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cipherService ciphers.CipherService,
	performanceService algorithms.PerformanceService,
	keyspaceService keyspace.KeyspaceService,
	analysisService analysis.AnalysisService,
	sessionService sessions.SessionService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Algorithms Routes
	algorithmHandler := NewAlgorithmHandler(performanceService, cipherService)
	v1.GET("/algorithms", algorithmHandler.List)
	v1.GET("/algorithms/:name/performance", algorithmHandler.Performance)
	v1.GET("/algorithms/:name/example", algorithmHandler.Example)

	// Keyspace Routes
	keyspaceHandler := NewKeyspaceHandler(keyspaceService)
	v1.GET("/keyspace/:bits", keyspaceHandler.Describe)

	// Analysis Routes
	analysisHandler := NewAnalysisHandler(analysisService)
	v1.GET("/analysis", analysisHandler.Table)

	// Ciphers Routes
	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/ciphers/encrypt", cipherHandler.Encrypt)
	v1.POST("/ciphers/decrypt", cipherHandler.Decrypt)

	// Sessions Routes
	sessionHandler := NewSessionHandler(sessionService, analysisService)
	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.PUT("/sessions/:id/plaintext", sessionHandler.SavePlaintext)
	v1.POST("/sessions/:id/sort", sessionHandler.ToggleSort)
	v1.GET("/sessions/:id/analysis", sessionHandler.Analysis)
	v1.DELETE("/sessions/:id", sessionHandler.DeleteByID)
}
