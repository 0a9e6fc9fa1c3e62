package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des" // #nosec G502 -- 3DES is one of the demonstrated algorithms
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// Key and IV lengths in bytes
const (
	AESKeySize       = 32
	TripleDESKeySize = 24
	RC4KeySize       = 32
)

// blockProcessor implements CipherProcessor for CBC-mode block ciphers with PKCS#7 padding
type blockProcessor struct {
	algorithm string
	keySize   int
	ivSize    int
	newCipher func(key []byte) (cipher.Block, error)
	random    io.Reader
	logger    logger.Logger
}

// NewAESProcessor creates a processor for AES-256-CBC
func NewAESProcessor(logger logger.Logger) (ciphers.CipherProcessor, error) {
	return &blockProcessor{
		algorithm: algorithms.AlgorithmAES,
		keySize:   AESKeySize,
		ivSize:    aes.BlockSize,
		newCipher: aes.NewCipher,
		random:    rand.Reader,
		logger:    logger,
	}, nil
}

// NewTripleDESProcessor creates a processor for 3DES-EDE-CBC
func NewTripleDESProcessor(logger logger.Logger) (ciphers.CipherProcessor, error) {
	return &blockProcessor{
		algorithm: algorithms.AlgorithmTripleDES,
		keySize:   TripleDESKeySize,
		ivSize:    des.BlockSize,
		newCipher: des.NewTripleDESCipher,
		random:    rand.Reader,
		logger:    logger,
	}, nil
}

func (p *blockProcessor) Algorithm() string {
	return p.algorithm
}

// Encrypt encrypts plaintext and returns the base64 OpenSSL envelope.
func (p *blockProcessor) Encrypt(plaintext, passphrase []byte) (string, error) {
	salt, err := newSalt(p.random)
	if err != nil {
		return "", err
	}

	key, iv := deriveKeyIV(passphrase, salt, p.keySize, p.ivSize)
	block, err := p.newCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create %s cipher: %w", p.algorithm, err)
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	p.logger.Debug(p.algorithm, " encryption succeeded")
	return sealEnvelope(salt, ciphertext), nil
}

// Decrypt decrypts a base64 OpenSSL envelope. The result must be non-empty UTF-8 text.
func (p *blockProcessor) Decrypt(ciphertext string, passphrase []byte) ([]byte, error) {
	salt, body, err := openEnvelope(ciphertext)
	if err != nil {
		return nil, errors.Join(ciphers.ErrDecryptionFailed, err)
	}

	key, iv := deriveKeyIV(passphrase, salt, p.keySize, p.ivSize)
	block, err := p.newCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cipher: %w", p.algorithm, err)
	}

	if len(body) == 0 || len(body)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ciphers.ErrDecryptionFailed)
	}

	padded := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, body)

	plaintext, err := pkcs7Unpad(padded, block.BlockSize())
	if err != nil {
		return nil, errors.Join(ciphers.ErrDecryptionFailed, err)
	}

	if err := checkText(plaintext); err != nil {
		return nil, err
	}

	p.logger.Debug(p.algorithm, " decryption succeeded")
	return plaintext, nil
}

func checkText(plaintext []byte) error {
	if len(plaintext) == 0 {
		return fmt.Errorf("%w: empty result", ciphers.ErrDecryptionFailed)
	}
	if !utf8.Valid(plaintext) {
		return fmt.Errorf("%w: result is not valid UTF-8", ciphers.ErrDecryptionFailed)
	}
	return nil
}
