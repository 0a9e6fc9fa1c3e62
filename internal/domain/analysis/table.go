package analysis

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrInvalidColumn is returned for a column outside the table.
var ErrInvalidColumn = errors.New("invalid sort column")

// Column identifies a table column
type Column int

// Table columns in display order
const (
	ColumnName Column = iota
	ColumnKeySize
	ColumnTimeTaken
	ColumnBruteForceAttempts
)

// Sort indicator classes
const (
	IndicatorAscending  = "sort-asc"
	IndicatorDescending = "sort-desc"
)

var columnNames = [...]string{"name", "keySize", "timeTaken", "bruteForceAttempts"}

// ColumnCount is the number of table columns
const ColumnCount = len(columnNames)

// String returns the query name of the column.
func (c Column) String() string {
	if c.Valid() {
		return columnNames[c]
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// Valid reports whether c is one of the table columns.
func (c Column) Valid() bool {
	return c >= 0 && int(c) < ColumnCount
}

// ParseColumn accepts either a column name (e.g. "keySize") or its index (e.g. "1").
func ParseColumn(s string) (Column, error) {
	for i, name := range columnNames {
		if strings.EqualFold(s, name) || s == fmt.Sprint(i) {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, s)
}

// Row is one line of the comparison table
type Row struct {
	Algorithm          string
	KeySize            uint32
	TimeTaken          float64
	BruteForceAttempts keyspace.Notation
}

// BuildRows creates one row per catalog algorithm in catalog order.
// A non-positive plaintextSize falls back to each algorithm's standard plaintext size.
func BuildRows(plaintextSize int) ([]Row, error) {
	catalog := algorithms.Catalog()
	rows := make([]Row, 0, len(catalog))

	for _, algorithm := range catalog {
		size := plaintextSize
		if size <= 0 {
			size = int(algorithm.StandardPlaintextSize)
		}

		timeTaken, err := algorithms.TimeTaken(algorithm.Name, size)
		if err != nil {
			return nil, err
		}

		attempts, err := keyspace.BruteForceAttempts(int(algorithm.KeySize))
		if err != nil {
			return nil, fmt.Errorf("failed to compute keyspace for %s: %w", algorithm.Name, err)
		}

		rows = append(rows, Row{
			Algorithm:          algorithm.Name,
			KeySize:            algorithm.KeySize,
			TimeTaken:          timeTaken,
			BruteForceAttempts: attempts,
		})
	}

	return rows, nil
}

// SortRows sorts rows in place by column. Names use English collation, the
// brute-force column compares the represented values. The sort is stable.
func SortRows(rows []Row, column Column, ascending bool) error {
	if !column.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, int(column))
	}

	collator := collate.New(language.English)

	compare := func(a, b Row) int {
		switch column {
		case ColumnName:
			return collator.CompareString(a.Algorithm, b.Algorithm)
		case ColumnKeySize:
			return cmp.Compare(a.KeySize, b.KeySize)
		case ColumnTimeTaken:
			return cmp.Compare(a.TimeTaken, b.TimeTaken)
		default:
			return a.BruteForceAttempts.Compare(b.BruteForceAttempts)
		}
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if ascending {
			return compare(a, b)
		}
		return compare(b, a)
	})

	return nil
}
