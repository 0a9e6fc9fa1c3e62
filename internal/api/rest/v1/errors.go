package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	keyspace.ErrInvalidInput,
	algorithms.ErrUnknownAlgorithm,
	algorithms.ErrKeyTooShort,
	analysis.ErrInvalidColumn,
	ciphers.ErrUnsupportedAlgorithm,
	ciphers.ErrOneWayHash,
	ciphers.ErrDecryptionFailed,
	ciphers.ErrInvalidCiphertext,
}

// statusCode maps service errors to HTTP status codes
func statusCode(err error) int {
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, err error) {
	message := err.Error()
	if errors.Is(err, ciphers.ErrDecryptionFailed) {
		message = ciphers.ErrDecryptionFailed.Error()
	}
	ctx.JSON(statusCode(err), ErrorResponse{Message: message})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
