package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// Registry resolves processors by algorithm name
type Registry struct {
	ciphers map[string]ciphers.CipherProcessor
	hashes  map[string]ciphers.HashProcessor
}

// NewRegistry creates processors for every demonstrated algorithm
func NewRegistry(log logger.Logger) (*Registry, error) {
	registry := &Registry{
		ciphers: make(map[string]ciphers.CipherProcessor),
		hashes:  make(map[string]ciphers.HashProcessor),
	}

	for _, newProcessor := range []func(logger.Logger) (ciphers.CipherProcessor, error){
		NewAESProcessor,
		NewTripleDESProcessor,
		NewRC4Processor,
	} {
		processor, err := newProcessor(log)
		if err != nil {
			return nil, err
		}
		registry.ciphers[processor.Algorithm()] = processor
	}

	hash, err := NewSHA256Processor(log)
	if err != nil {
		return nil, err
	}
	registry.hashes[hash.Algorithm()] = hash

	return registry, nil
}

// Cipher returns the cipher processor for algorithm
func (r *Registry) Cipher(algorithm string) (ciphers.CipherProcessor, error) {
	processor, ok := r.ciphers[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: no cipher registered for %s", ciphers.ErrUnsupportedAlgorithm, algorithm)
	}
	return processor, nil
}

// Hash returns the hash processor for algorithm
func (r *Registry) Hash(algorithm string) (ciphers.HashProcessor, error) {
	processor, ok := r.hashes[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: no hash registered for %s", ciphers.ErrUnsupportedAlgorithm, algorithm)
	}
	return processor, nil
}
