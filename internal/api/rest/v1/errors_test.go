//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: abc", sessions.ErrSessionNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: -1", keyspace.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: DES", algorithms.ErrUnknownAlgorithm), http.StatusBadRequest},
		{algorithms.ErrKeyTooShort, http.StatusBadRequest},
		{analysis.ErrInvalidColumn, http.StatusBadRequest},
		{errors.Join(ciphers.ErrDecryptionFailed, ciphers.ErrInvalidCiphertext), http.StatusBadRequest},
		{ciphers.ErrOneWayHash, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, statusCode(tt.err), tt.err.Error())
	}
}
