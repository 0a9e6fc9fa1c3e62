package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/infrastructure/metrics"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// cipherService implements the CipherService interface on top of a processor registry
type cipherService struct {
	registry ciphers.ProcessorRegistry
	random   io.Reader
	logger   logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(registry ciphers.ProcessorRegistry, logger logger.Logger) (ciphers.CipherService, error) {
	if registry == nil {
		return nil, fmt.Errorf("processor registry must not be nil")
	}
	return &cipherService{
		registry: registry,
		random:   rand.Reader,
		logger:   logger,
	}, nil
}

// Encrypt encrypts plaintext with key, or hashes it when algorithm is a hash function.
func (s *cipherService) Encrypt(ctx context.Context, algorithm, key, plaintext string) (result string, err error) {
	algo, err := algorithms.Lookup(algorithm)
	if err != nil {
		return "", err
	}

	operation := metrics.OperationEncrypt
	if algo.IsHash() {
		operation = metrics.OperationHash
	}
	defer func(start time.Time) {
		metrics.ObserveOperation(algo.Name, operation, start, err)
	}(time.Now())

	if err := algo.ValidateKey(key); err != nil {
		return "", err
	}

	return s.encrypt(algo, key, plaintext)
}

func (s *cipherService) encrypt(algo algorithms.Algorithm, key, plaintext string) (string, error) {
	if algo.IsHash() {
		hash, err := s.registry.Hash(algo.Name)
		if err != nil {
			return "", err
		}
		return hash.Digest([]byte(plaintext)), nil
	}

	processor, err := s.registry.Cipher(algo.Name)
	if err != nil {
		return "", err
	}

	ciphertext, err := processor.Encrypt([]byte(plaintext), []byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with %s: %w", algo.Name, err)
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with key. Hash functions cannot be reversed.
func (s *cipherService) Decrypt(ctx context.Context, algorithm, key, ciphertext string) (result string, err error) {
	algo, err := algorithms.Lookup(algorithm)
	if err != nil {
		return "", err
	}

	defer func(start time.Time) {
		metrics.ObserveOperation(algo.Name, metrics.OperationDecrypt, start, err)
	}(time.Now())

	if err := algo.ValidateKey(key); err != nil {
		return "", err
	}

	if algo.IsHash() {
		return "", fmt.Errorf("%s is a %w", algo.Name, ciphers.ErrOneWayHash)
	}

	processor, err := s.registry.Cipher(algo.Name)
	if err != nil {
		return "", err
	}

	plaintext, err := processor.Decrypt(ciphertext, []byte(key))
	if err != nil {
		s.logger.Warn("Decryption with ", algo.Name, " failed: ", err)
		return "", err
	}
	return string(plaintext), nil
}

// RunExample encrypts the fixed example plaintext. The example key is not checked against the key policy.
func (s *cipherService) RunExample(ctx context.Context, algorithm string) (result *ciphers.ExampleResult, err error) {
	algo, err := algorithms.Lookup(algorithm)
	if err != nil {
		return nil, err
	}

	defer func(start time.Time) {
		metrics.ObserveOperation(algo.Name, metrics.OperationExample, start, err)
	}(time.Now())

	key := algo.ExampleKey()
	output, err := s.encrypt(algo, key, algorithms.ExamplePlaintext)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Ran example for ", algo.Name)
	return &ciphers.ExampleResult{
		Algorithm: algo.Name,
		Plaintext: algorithms.ExamplePlaintext,
		Key:       key,
		Result:    output,
	}, nil
}

// GenerateKey returns a random hex passphrase of exactly KeySize/8 characters, rounded up.
func (s *cipherService) GenerateKey(ctx context.Context, algorithm string) (string, error) {
	algo, err := algorithms.Lookup(algorithm)
	if err != nil {
		return "", err
	}

	length := int(algo.KeySize+7) / 8
	raw := make([]byte, (length+1)/2)
	if _, err := io.ReadFull(s.random, raw); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}

	return hex.EncodeToString(raw)[:length], nil
}
