package algorithms

import "errors"

var (
	// ErrUnknownAlgorithm is returned when a name is not part of the catalog.
	ErrUnknownAlgorithm = errors.New("unsupported algorithm")

	// ErrKeyTooShort is returned when a key carries fewer bits than the algorithm requires.
	ErrKeyTooShort = errors.New("key too short")
)
