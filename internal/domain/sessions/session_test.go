//go:build unit
// +build unit

package sessions

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	session := NewSession()

	require.NoError(t, session.Validate())
	assert.NotEmpty(t, session.ID)
	assert.Empty(t, session.Plaintext)
	assert.Equal(t, 0, session.PlaintextSize)
	assert.Equal(t, analysis.NewSortState(), session.SortState())
}

func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(s *Session)
		expectedError bool
	}{
		{"valid", func(_ *Session) {}, false},
		{"invalid id", func(s *Session) { s.ID = "not-a-uuid" }, true},
		{"negative size", func(s *Session) { s.PlaintextSize = -1 }, true},
		{"column out of range", func(s *Session) { s.SortColumn = 4 }, true},
		{"plaintext too long", func(s *Session) { s.Plaintext = strings.Repeat("a", 65537) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession()
			tt.mutate(session)

			err := session.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession_SetPlaintext(t *testing.T) {
	session := NewSession()
	created := session.DateTimeUpdated

	session.SetPlaintext("Grüße")
	assert.Equal(t, "Grüße", session.Plaintext)
	assert.Equal(t, 5, session.PlaintextSize)
	assert.False(t, session.DateTimeUpdated.Before(created))
	assert.Equal(t, 5, session.EffectivePlaintextSize(1000))

	session.SetPlaintext("")
	assert.Equal(t, 1000, session.EffectivePlaintextSize(1000))
}

func TestSession_SetPlaintext_CountsUTF16Units(t *testing.T) {
	tests := map[string]int{
		"Hello, World!": 13,
		"日本語":           3,
		"🔐 key":         6,
		"𝄞𝄞":            4,
		"\xff\xfe":      2,
	}

	for plaintext, expected := range tests {
		session := NewSession()
		session.SetPlaintext(plaintext)
		assert.Equal(t, expected, session.PlaintextSize, "%q", plaintext)
	}
}

func TestSession_ToggleSort(t *testing.T) {
	session := NewSession()

	require.NoError(t, session.ToggleSort(analysis.ColumnName))
	assert.Equal(t, 0, session.SortColumn)
	assert.False(t, session.SortAscending)

	require.NoError(t, session.ToggleSort(analysis.ColumnBruteForceAttempts))
	assert.Equal(t, 3, session.SortColumn)
	assert.True(t, session.SortAscending)

	assert.ErrorIs(t, session.ToggleSort(analysis.Column(5)), analysis.ErrInvalidColumn)
	assert.Equal(t, 3, session.SortColumn)
}
