package cryptography

import (
	"crypto/rand"
	"crypto/rc4" // #nosec G503 -- RC4 is one of the demonstrated algorithms
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// rc4Processor implements CipherProcessor for the RC4 stream cipher.
// The 256-bit key is derived like the block ciphers' keys, without an IV.
type rc4Processor struct {
	random io.Reader
	logger logger.Logger
}

// NewRC4Processor creates a processor for RC4
func NewRC4Processor(logger logger.Logger) (ciphers.CipherProcessor, error) {
	return &rc4Processor{
		random: rand.Reader,
		logger: logger,
	}, nil
}

func (p *rc4Processor) Algorithm() string {
	return algorithms.AlgorithmRC4
}

func (p *rc4Processor) xorKeyStream(passphrase, salt, data []byte) ([]byte, error) {
	key, _ := deriveKeyIV(passphrase, salt, RC4KeySize, 0)

	stream, err := rc4.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create RC4 cipher: %w", err)
	}

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)
	return out, nil
}

// Encrypt encrypts plaintext and returns the base64 OpenSSL envelope.
func (p *rc4Processor) Encrypt(plaintext, passphrase []byte) (string, error) {
	salt, err := newSalt(p.random)
	if err != nil {
		return "", err
	}

	ciphertext, err := p.xorKeyStream(passphrase, salt, plaintext)
	if err != nil {
		return "", err
	}

	p.logger.Debug("RC4 encryption succeeded")
	return sealEnvelope(salt, ciphertext), nil
}

// Decrypt decrypts a base64 OpenSSL envelope. The result must be non-empty UTF-8 text.
func (p *rc4Processor) Decrypt(ciphertext string, passphrase []byte) ([]byte, error) {
	salt, body, err := openEnvelope(ciphertext)
	if err != nil {
		return nil, errors.Join(ciphers.ErrDecryptionFailed, err)
	}

	plaintext, err := p.xorKeyStream(passphrase, salt, body)
	if err != nil {
		return nil, err
	}

	if err := checkText(plaintext); err != nil {
		return nil, err
	}

	p.logger.Debug("RC4 decryption succeeded")
	return plaintext, nil
}
