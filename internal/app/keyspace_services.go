package app

import (
	"context"

	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// keyspaceService implements the KeyspaceService interface
type keyspaceService struct {
	logger logger.Logger
}

// NewKeyspaceService creates a new keyspaceService instance
func NewKeyspaceService(logger logger.Logger) (keyspace.KeyspaceService, error) {
	return &keyspaceService{logger: logger}, nil
}

// Describe computes 2^keyBitLength and its scientific notation.
func (s *keyspaceService) Describe(ctx context.Context, keyBitLength int) (*keyspace.Report, error) {
	value, err := keyspace.ComputeKeyspace(keyBitLength)
	if err != nil {
		return nil, err
	}

	notation, err := keyspace.FormatScientific(value)
	if err != nil {
		return nil, err
	}

	return &keyspace.Report{
		KeyBitLength: keyBitLength,
		Keyspace:     value,
		Notation:     notation,
	}, nil
}
