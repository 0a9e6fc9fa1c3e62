// Package algorithms holds the fixed catalog of demonstrated algorithms (AES, 3DES, SHA-256, RC4)
// together with their reference benchmark timings, synthetic performance curves and key policy.
package algorithms
