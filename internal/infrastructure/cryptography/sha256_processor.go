package cryptography

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

type sha256Processor struct {
	logger logger.Logger
}

// NewSHA256Processor creates a hash processor for SHA-256
func NewSHA256Processor(logger logger.Logger) (ciphers.HashProcessor, error) {
	return &sha256Processor{logger: logger}, nil
}

func (p *sha256Processor) Algorithm() string {
	return algorithms.AlgorithmSHA256
}

// Digest returns the lowercase hex SHA-256 digest of data.
func (p *sha256Processor) Digest(data []byte) string {
	sum := sha256.Sum256(data)
	p.logger.Debug("SHA-256 digest computed")
	return hex.EncodeToString(sum[:])
}
