//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyedRequest struct {
	Algorithm string `validate:"required,algorithm"`
	Key       string `validate:"keyLength"`
}

func TestValidators(t *testing.T) {
	validate := validator.New()
	require.NoError(t, Register(validate))

	tests := []struct {
		name      string
		request   keyedRequest
		shouldErr bool
	}{
		{"AES 256-bit key", keyedRequest{Algorithm: "AES", Key: strings.Repeat("k", 32)}, false},
		{"AES 128-bit key", keyedRequest{Algorithm: "AES", Key: strings.Repeat("k", 16)}, true},
		{"3DES 168-bit key", keyedRequest{Algorithm: "3DES", Key: strings.Repeat("k", 21)}, false},
		{"3DES 160-bit key", keyedRequest{Algorithm: "3DES", Key: strings.Repeat("k", 20)}, true},
		{"RC4 128-bit key", keyedRequest{Algorithm: "RC4", Key: strings.Repeat("k", 16)}, false},
		{"SHA-256 256-bit key", keyedRequest{Algorithm: "SHA-256", Key: strings.Repeat("k", 32)}, false},
		{"unknown algorithm", keyedRequest{Algorithm: "DES", Key: strings.Repeat("k", 32)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
