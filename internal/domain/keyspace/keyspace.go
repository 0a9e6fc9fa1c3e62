package keyspace

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for negative bit lengths and for values that are not strictly positive.
var ErrInvalidInput = errors.New("invalid input")

// MantissaDigits is the number of fractional digits kept in a mantissa.
const MantissaDigits = 2

// MaxKeyBitLength bounds the key lengths accepted by ComputeKeyspace. 2^4096 has
// 1234 decimal digits, far beyond any key size in use.
const MaxKeyBitLength = 4096

// Notation is a number expressed as Mantissa x 10^Exponent.
type Notation struct {
	Mantissa string `json:"mantissa"`
	Exponent int    `json:"exponent"`
}

// String renders the notation as "<mantissa>e<exponent>".
func (n Notation) String() string {
	return fmt.Sprintf("%se%d", n.Mantissa, n.Exponent)
}

// Compare orders two notations by the value they represent.
// It returns -1, 0 or +1. Mantissas are assumed to be normalized (1 <= m < 10).
func (n Notation) Compare(other Notation) int {
	switch {
	case n.Exponent < other.Exponent:
		return -1
	case n.Exponent > other.Exponent:
		return 1
	}
	return strings.Compare(n.Mantissa, other.Mantissa)
}

// ComputeKeyspace returns 2^keyBitLength exactly for 0 <= keyBitLength <= MaxKeyBitLength.
func ComputeKeyspace(keyBitLength int) (*big.Int, error) {
	if keyBitLength < 0 {
		return nil, fmt.Errorf("%w: key bit length must not be negative, got %d", ErrInvalidInput, keyBitLength)
	}
	if keyBitLength > MaxKeyBitLength {
		return nil, fmt.Errorf("%w: key bit length must not exceed %d, got %d", ErrInvalidInput, MaxKeyBitLength, keyBitLength)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(keyBitLength)), nil
}

// FormatScientific converts a strictly positive integer to scientific notation.
//
// The exponent is the number of decimal digits minus one. The mantissa keeps the
// leading digit and two fractional digits, rounded half-up on the next digit;
// a carry out of 9.99 yields 1.00 with the exponent incremented.
func FormatScientific(value *big.Int) (Notation, error) {
	if value == nil || value.Sign() <= 0 {
		return Notation{}, fmt.Errorf("%w: value must be strictly positive", ErrInvalidInput)
	}

	digits := value.Text(10)
	exponent := len(digits) - 1

	significant := MantissaDigits + 1
	lead := digits
	if len(lead) > significant {
		lead = lead[:significant]
	}
	lead += strings.Repeat("0", significant-len(lead))

	scaled, err := strconv.Atoi(lead)
	if err != nil {
		return Notation{}, fmt.Errorf("failed to parse leading digits %q: %w", lead, err)
	}

	if len(digits) > significant && digits[significant] >= '5' {
		scaled++
	}
	if scaled == 1000 {
		scaled = 100
		exponent++
	}

	return Notation{
		Mantissa: fmt.Sprintf("%d.%02d", scaled/100, scaled%100),
		Exponent: exponent,
	}, nil
}

// BruteForceAttempts returns the scientific notation of 2^keyBitLength, the number of
// keys an exhaustive search has to try in the worst case.
func BruteForceAttempts(keyBitLength int) (Notation, error) {
	value, err := ComputeKeyspace(keyBitLength)
	if err != nil {
		return Notation{}, err
	}
	return FormatScientific(value)
}
