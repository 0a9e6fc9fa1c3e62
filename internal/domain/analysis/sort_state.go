package analysis

import "fmt"

// SortState remembers which column the table is sorted by and in which direction.
type SortState struct {
	Column    Column
	Ascending bool
}

// NewSortState returns the initial state: sorted by name, ascending.
func NewSortState() SortState {
	return SortState{Column: ColumnName, Ascending: true}
}

// Toggle selects column. Selecting the active column flips the direction,
// selecting another column sorts it ascending.
func (s *SortState) Toggle(column Column) error {
	if !column.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, int(column))
	}

	if column == s.Column {
		s.Ascending = !s.Ascending
	} else {
		s.Ascending = true
	}
	s.Column = column
	return nil
}

// Indicators returns one CSS-style class per column: the sort direction for the
// active column and an empty string for the others.
func (s SortState) Indicators() []string {
	indicators := make([]string, ColumnCount)
	if !s.Column.Valid() {
		return indicators
	}

	if s.Ascending {
		indicators[s.Column] = IndicatorAscending
	} else {
		indicators[s.Column] = IndicatorDescending
	}
	return indicators
}
