package cryptography

import (
	"bytes"
	"crypto/md5" // #nosec G501 -- EVP_BytesToKey is defined over MD5
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
)

// OpenSSL passphrase envelope: base64("Salted__" || salt || ciphertext)
const (
	saltHeader = "Salted__"
	SaltSize   = 8
)

// deriveKeyIV implements OpenSSL's EVP_BytesToKey with MD5 and a single iteration:
// D_i = MD5(D_{i-1} || passphrase || salt), concatenated until key and IV are filled.
func deriveKeyIV(passphrase, salt []byte, keyLen, ivLen int) (key, iv []byte) {
	derived := make([]byte, 0, keyLen+ivLen+md5.Size)
	var block []byte

	for len(derived) < keyLen+ivLen {
		h := md5.New() // #nosec G401
		h.Write(block)
		h.Write(passphrase)
		h.Write(salt)
		block = h.Sum(nil)
		derived = append(derived, block...)
	}

	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func newSalt(random io.Reader) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

func sealEnvelope(salt, ciphertext []byte) string {
	envelope := make([]byte, 0, len(saltHeader)+len(salt)+len(ciphertext))
	envelope = append(envelope, saltHeader...)
	envelope = append(envelope, salt...)
	envelope = append(envelope, ciphertext...)
	return base64.StdEncoding.EncodeToString(envelope)
}

func openEnvelope(encoded string) (salt, ciphertext []byte, err error) {
	envelope, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace([]byte(encoded))))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ciphers.ErrInvalidCiphertext, err)
	}

	if len(envelope) < len(saltHeader)+SaltSize || !bytes.HasPrefix(envelope, []byte(saltHeader)) {
		return nil, nil, fmt.Errorf("%w: missing %q header", ciphers.ErrInvalidCiphertext, saltHeader)
	}

	salt = envelope[len(saltHeader) : len(saltHeader)+SaltSize]
	ciphertext = envelope[len(saltHeader)+SaltSize:]
	return salt, ciphertext, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ciphers.ErrInvalidCiphertext, len(data), blockSize)
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: bad padding", ciphers.ErrInvalidCiphertext)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: bad padding", ciphers.ErrInvalidCiphertext)
		}
	}

	return data[:len(data)-padding], nil
}
