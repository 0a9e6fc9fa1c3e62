package keyspace

import (
	"context"
	"math/big"
)

// Report describes the keyspace of one key length
type Report struct {
	KeyBitLength int
	Keyspace     *big.Int
	Notation     Notation
}

// KeyspaceService defines methods for describing keyspaces.
type KeyspaceService interface {
	// Describe computes and formats the keyspace of keyBitLength.
	Describe(ctx context.Context, keyBitLength int) (*Report, error)
}
