package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for handling encryption and decryption
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService ciphers.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService ciphers.CipherService) CipherHandler {
	return &cipherHandler{cipherService: cipherService}
}

// Encrypt handles the POST request to encrypt or hash plaintext
// @Summary Encrypt or hash plaintext
// @Description Encrypt plaintext with AES, 3DES or RC4, or hash it with SHA-256.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption request"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /ciphers/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid encryption request: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	result, err := handler.cipherService.Encrypt(ctx, request.Algorithm, request.Key, request.Plaintext)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Algorithm: request.Algorithm, Result: result})
}

// Decrypt handles the POST request to decrypt ciphertext
// @Summary Decrypt ciphertext
// @Description Decrypt an OpenSSL compatible base64 ciphertext. SHA-256 cannot be decrypted.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption request"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /ciphers/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid decryption request: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	result, err := handler.cipherService.Decrypt(ctx, request.Algorithm, request.Key, request.Ciphertext)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Algorithm: request.Algorithm, Result: result})
}
