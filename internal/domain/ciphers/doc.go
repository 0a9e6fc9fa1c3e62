// Package ciphers defines the core interfaces for the demonstrated cryptographic operations:
// passphrase-based symmetric encryption and decryption (AES, 3DES, RC4) and hashing (SHA-256).
package ciphers
