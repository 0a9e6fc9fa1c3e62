package ciphers

import "context"

// CipherProcessor handles passphrase-based symmetric encryption.
// Output follows the OpenSSL "Salted__" envelope encoded as base64, which is
// also what CryptoJS produces for passphrase encryption.
type CipherProcessor interface {
	// Algorithm returns the catalog name of the cipher.
	Algorithm() string

	// Encrypt derives key material from passphrase and a random salt and encrypts plaintext.
	Encrypt(plaintext, passphrase []byte) (string, error)

	// Decrypt reverses Encrypt. It returns ErrDecryptionFailed when the result is not usable text.
	Decrypt(ciphertext string, passphrase []byte) ([]byte, error)
}

// HashProcessor handles one-way hashing.
type HashProcessor interface {
	// Algorithm returns the catalog name of the hash function.
	Algorithm() string

	// Digest returns the lowercase hex digest of data.
	Digest(data []byte) string
}

// ProcessorRegistry resolves processors by algorithm name.
type ProcessorRegistry interface {
	Cipher(algorithm string) (CipherProcessor, error)
	Hash(algorithm string) (HashProcessor, error)
}

// ExampleResult is the outcome of running an algorithm on the fixed example input
type ExampleResult struct {
	Algorithm string
	Plaintext string
	Key       string
	Result    string
}

// CipherService defines the cipher operations exposed to the CLI and the REST API.
type CipherService interface {
	// Encrypt encrypts plaintext with key, or hashes it for hash algorithms.
	// The key must satisfy the algorithm's minimum key length.
	Encrypt(ctx context.Context, algorithm, key, plaintext string) (string, error)

	// Decrypt decrypts ciphertext with key. Hash algorithms return ErrOneWayHash.
	Decrypt(ctx context.Context, algorithm, key, ciphertext string) (string, error)

	// RunExample encrypts the fixed example plaintext with the fixed example key.
	RunExample(ctx context.Context, algorithm string) (*ExampleResult, error)

	// GenerateKey returns a random passphrase that satisfies the algorithm's minimum key length.
	GenerateKey(ctx context.Context, algorithm string) (string, error)
}
