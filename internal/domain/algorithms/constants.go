package algorithms

// AlgorithmAES represents the AES block cipher
const AlgorithmAES = "AES"

// AlgorithmTripleDES represents the Triple DES block cipher
const AlgorithmTripleDES = "3DES"

// AlgorithmSHA256 represents the SHA-256 hash function
const AlgorithmSHA256 = "SHA-256"

// AlgorithmRC4 represents the RC4 stream cipher
const AlgorithmRC4 = "RC4"

// Reference timings in microseconds
const (
	TimeTakenAES       = 879.538
	TimeTakenTripleDES = 733.476
	TimeTakenSHA256    = 244.404
	TimeTakenRC4       = 236.776
)

// Sampling range of the performance curves
const (
	PerformanceInputStart = 1
	PerformanceInputEnd   = 4096
	PerformanceInputStep  = 64
)

// Chart labels accompanying a performance curve
const (
	PerformanceCaption = "(x,y) represent plaintext size vs time taken in microseconds"
	PerformanceAxisX   = "Plaintext Size"
	PerformanceAxisY   = "Time Taken in Microseconds"
)

// DefaultPlaintextSize is used by the analysis table when no plaintext has been stored.
const DefaultPlaintextSize = 1000

// Fixed inputs of the example run
const (
	ExamplePlaintext  = "Hello, World!"
	ExampleKeyAES     = "ThisIsASecretKey"
	ExampleKeyDefault = "SecretK1SecretK2SecretK3"
)
