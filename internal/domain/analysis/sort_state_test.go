//go:build unit
// +build unit

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortState_Toggle(t *testing.T) {
	state := NewSortState()
	assert.Equal(t, SortState{Column: ColumnName, Ascending: true}, state)

	// Same column flips direction
	require.NoError(t, state.Toggle(ColumnName))
	assert.False(t, state.Ascending)

	require.NoError(t, state.Toggle(ColumnName))
	assert.True(t, state.Ascending)

	// A new column always starts ascending
	require.NoError(t, state.Toggle(ColumnName))
	require.NoError(t, state.Toggle(ColumnTimeTaken))
	assert.Equal(t, SortState{Column: ColumnTimeTaken, Ascending: true}, state)

	err := state.Toggle(Column(7))
	assert.ErrorIs(t, err, ErrInvalidColumn)
	assert.Equal(t, ColumnTimeTaken, state.Column, "state must be unchanged after an invalid toggle")
}

func TestSortState_Indicators(t *testing.T) {
	state := SortState{Column: ColumnKeySize, Ascending: true}
	assert.Equal(t, []string{"", IndicatorAscending, "", ""}, state.Indicators())

	state.Ascending = false
	assert.Equal(t, []string{"", IndicatorDescending, "", ""}, state.Indicators())

	invalid := SortState{Column: Column(12)}
	assert.Equal(t, []string{"", "", "", ""}, invalid.Indicators())
}
