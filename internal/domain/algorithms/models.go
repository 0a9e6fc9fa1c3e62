package algorithms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Algorithm describes one demonstrated algorithm
type Algorithm struct {
	Name                  string `validate:"required,oneof=AES 3DES SHA-256 RC4"`
	KeySize               uint32 `validate:"required,min=1"`
	StandardPlaintextSize uint32 `validate:"required,min=1"`
}

// Validate for validating Algorithm struct
func (a *Algorithm) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// IsHash reports whether the algorithm is a one-way hash rather than a cipher.
func (a Algorithm) IsHash() bool {
	return a.Name == AlgorithmSHA256
}

// ValidateKey checks that key carries at least KeySize bits, counting eight bits per byte.
func (a Algorithm) ValidateKey(key string) error {
	if uint64(len(key))*8 < uint64(a.KeySize) {
		return fmt.Errorf("%w: key must be at least %d bits long for %s", ErrKeyTooShort, a.KeySize, a.Name)
	}
	return nil
}

// ExampleKey returns the passphrase used by the example run.
func (a Algorithm) ExampleKey() string {
	if a.Name == AlgorithmAES {
		return ExampleKeyAES
	}
	return ExampleKeyDefault
}

var catalog = [...]Algorithm{
	{Name: AlgorithmAES, KeySize: 256, StandardPlaintextSize: 128},
	{Name: AlgorithmTripleDES, KeySize: 168, StandardPlaintextSize: 64},
	{Name: AlgorithmSHA256, KeySize: 256, StandardPlaintextSize: 512},
	{Name: AlgorithmRC4, KeySize: 128, StandardPlaintextSize: 256},
}

// Catalog returns a copy of all algorithms in display order.
func Catalog() []Algorithm {
	algorithms := make([]Algorithm, len(catalog))
	copy(algorithms, catalog[:])
	return algorithms
}

// Names returns the algorithm names in display order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, algorithm := range catalog {
		names = append(names, algorithm.Name)
	}
	return names
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	for _, algorithm := range catalog {
		if algorithm.Name == name {
			return algorithm, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// TimeTaken returns the reference encryption time in microseconds.
// The value is a fixed measurement and does not depend on plaintextSize.
func TimeTaken(name string, plaintextSize int) (float64, error) {
	switch name {
	case AlgorithmSHA256:
		return TimeTakenSHA256, nil
	case AlgorithmAES:
		return TimeTakenAES, nil
	case AlgorithmTripleDES:
		return TimeTakenTripleDES, nil
	case AlgorithmRC4:
		return TimeTakenRC4, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
}
