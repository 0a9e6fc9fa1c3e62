// Package cryptography implements the cipher and hash processors on top of the standard
// library primitives, using the OpenSSL passphrase envelope for ciphertexts.
package cryptography
