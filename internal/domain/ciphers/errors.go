package ciphers

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when no processor is registered for an algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrOneWayHash is returned when decryption is requested for a hash function.
	// Callers prefix it with the algorithm name, e.g. "SHA-256 is a one-way hash ...".
	ErrOneWayHash = errors.New("one-way hash function and cannot be decrypted")

	// ErrDecryptionFailed is returned when a ciphertext cannot be decrypted into readable text.
	// This includes malformed encoding, a missing salt header, bad padding and non UTF-8 output.
	ErrDecryptionFailed = errors.New("decryption failed, please check your key and ciphertext")

	// ErrInvalidCiphertext is returned when the ciphertext envelope is malformed.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)
