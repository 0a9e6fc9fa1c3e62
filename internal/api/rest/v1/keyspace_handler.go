package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// KeyspaceHandler defines the interface for handling keyspace operations
type KeyspaceHandler interface {
	Describe(ctx *gin.Context)
}

type keyspaceHandler struct {
	keyspaceService keyspace.KeyspaceService
}

// NewKeyspaceHandler creates a new KeyspaceHandler
func NewKeyspaceHandler(keyspaceService keyspace.KeyspaceService) KeyspaceHandler {
	return &keyspaceHandler{keyspaceService: keyspaceService}
}

// Describe handles the GET request for the keyspace of a key length
// @Summary Describe a keyspace
// @Description Compute 2^bits exactly and format it in scientific notation, e.g. 1.16e77.
// @Tags Keyspace
// @Produce json
// @Param bits path int true "Key length in bits"
// @Success 200 {object} KeyspaceResponse
// @Failure 400 {object} ErrorResponse
// @Router /keyspace/{bits} [get]
func (handler *keyspaceHandler) Describe(ctx *gin.Context) {
	bits, err := httputil.ConvertToInt(ctx.Param("bits"))
	if err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid key bit length: %v", err))
		return
	}

	report, err := handler.keyspaceService.Describe(ctx, bits)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, KeyspaceResponse{
		KeyBitLength: report.KeyBitLength,
		Keyspace:     report.Keyspace.String(),
		Mantissa:     report.Notation.Mantissa,
		Exponent:     report.Notation.Exponent,
		Notation:     report.Notation.String(),
	})
}
