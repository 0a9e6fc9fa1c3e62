//go:build unit
// +build unit

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func algorithmOrder(rows []Row) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Algorithm)
	}
	return names
}

func TestBuildRows(t *testing.T) {
	rows, err := BuildRows(1000)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"AES", "3DES", "SHA-256", "RC4"}, algorithmOrder(rows))
	assert.Equal(t, uint32(256), rows[0].KeySize)
	assert.Equal(t, 879.538, rows[0].TimeTaken)
	assert.Equal(t, "1.16e77", rows[0].BruteForceAttempts.String())
	assert.Equal(t, "3.74e50", rows[1].BruteForceAttempts.String())
	assert.Equal(t, "1.16e77", rows[2].BruteForceAttempts.String())
	assert.Equal(t, "3.40e38", rows[3].BruteForceAttempts.String())

	fallback, err := BuildRows(0)
	require.NoError(t, err)
	assert.Equal(t, rows, fallback)
}

func TestSortRows(t *testing.T) {
	tests := []struct {
		name      string
		column    Column
		ascending bool
		expected  []string
	}{
		{"name ascending", ColumnName, true, []string{"3DES", "AES", "RC4", "SHA-256"}},
		{"name descending", ColumnName, false, []string{"SHA-256", "RC4", "AES", "3DES"}},
		{"key size ascending", ColumnKeySize, true, []string{"RC4", "3DES", "AES", "SHA-256"}},
		{"time ascending", ColumnTimeTaken, true, []string{"RC4", "SHA-256", "3DES", "AES"}},
		{"time descending", ColumnTimeTaken, false, []string{"AES", "3DES", "SHA-256", "RC4"}},
		{"brute force ascending", ColumnBruteForceAttempts, true, []string{"RC4", "3DES", "AES", "SHA-256"}},
		{"brute force descending", ColumnBruteForceAttempts, false, []string{"AES", "SHA-256", "3DES", "RC4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := BuildRows(1000)
			require.NoError(t, err)

			require.NoError(t, SortRows(rows, tt.column, tt.ascending))
			assert.Equal(t, tt.expected, algorithmOrder(rows))
		})
	}
}

func TestSortRows_InvalidColumn(t *testing.T) {
	rows, err := BuildRows(1000)
	require.NoError(t, err)

	assert.ErrorIs(t, SortRows(rows, Column(4), true), ErrInvalidColumn)
	assert.ErrorIs(t, SortRows(rows, Column(-1), true), ErrInvalidColumn)
}

func TestParseColumn(t *testing.T) {
	tests := map[string]Column{
		"name":               ColumnName,
		"keySize":            ColumnKeySize,
		"keysize":            ColumnKeySize,
		"2":                  ColumnTimeTaken,
		"bruteForceAttempts": ColumnBruteForceAttempts,
	}

	for input, expected := range tests {
		column, err := ParseColumn(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, column)
	}

	_, err := ParseColumn("memory")
	assert.ErrorIs(t, err, ErrInvalidColumn)
	assert.Equal(t, "timeTaken", ColumnTimeTaken.String())
	assert.Equal(t, "Column(9)", Column(9).String())
}
