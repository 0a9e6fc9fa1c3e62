package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Sort orders accepted by the analysis endpoints
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ErrorResponse represents an error message returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message returned by the API
type InfoResponse struct {
	Message string `json:"message"`
}

// AlgorithmResponse describes one catalog algorithm
type AlgorithmResponse struct {
	Name                  string `json:"name"`
	KeySize               uint32 `json:"keySize"`
	StandardPlaintextSize uint32 `json:"standardPlaintextSize"`
	OneWay                bool   `json:"oneWay"`
}

// PerformancePointResponse is one chart sample
type PerformancePointResponse struct {
	InputSize  int     `json:"inputSize"`
	Complexity float64 `json:"complexity"`
}

// PerformanceResponse is the chart data of one algorithm
type PerformanceResponse struct {
	Algorithm string                     `json:"algorithm"`
	Caption   string                     `json:"caption"`
	AxisX     string                     `json:"axisX"`
	AxisY     string                     `json:"axisY"`
	Points    []PerformancePointResponse `json:"points"`
}

// ExampleResponse is the outcome of an example run
type ExampleResponse struct {
	Algorithm string `json:"algorithm"`
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`
	Result    string `json:"result"`
}

// KeyspaceResponse describes the keyspace of one key length
type KeyspaceResponse struct {
	KeyBitLength int    `json:"keyBitLength"`
	Keyspace     string `json:"keyspace"`
	Mantissa     string `json:"mantissa"`
	Exponent     int    `json:"exponent"`
	Notation     string `json:"notation"`
}

// AnalysisRowResponse is one line of the comparison table
type AnalysisRowResponse struct {
	Algorithm          string  `json:"algorithm"`
	KeySize            uint32  `json:"keySize"`
	TimeTaken          float64 `json:"timeTaken"`
	BruteForceAttempts string  `json:"bruteForceAttempts"`
}

// AnalysisResponse is the comparison table with its sort state
type AnalysisResponse struct {
	PlaintextSize int                   `json:"plaintextSize"`
	SortBy        string                `json:"sortBy"`
	SortOrder     string                `json:"sortOrder"`
	Indicators    []string              `json:"indicators"`
	MemoryUsage   string                `json:"memoryUsage"`
	Rows          []AnalysisRowResponse `json:"rows"`
}

// AnalysisQuery holds the query parameters of the analysis endpoint
type AnalysisQuery struct {
	PlaintextSize int    `validate:"min=0"`
	SortBy        string `validate:"omitempty"`
	SortOrder     string `validate:"omitempty,oneof=asc desc"`
}

// Validate for validating AnalysisQuery struct
func (q *AnalysisQuery) Validate() error {
	return validateStruct(q)
}

// EncryptRequest represents the body of an encryption or hashing request
type EncryptRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
	Key       string `json:"key" validate:"required,keyLength"`
	Plaintext string `json:"plaintext" validate:"required"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateCipherRequest(r, r.Algorithm, r.Key)
}

// DecryptRequest represents the body of a decryption request
type DecryptRequest struct {
	Algorithm  string `json:"algorithm" validate:"required,algorithm"`
	Key        string `json:"key" validate:"required,keyLength"`
	Ciphertext string `json:"ciphertext" validate:"required"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateCipherRequest(r, r.Algorithm, r.Key)
}

// CipherResponse carries the result of an encrypt, hash or decrypt request
type CipherResponse struct {
	Algorithm string `json:"algorithm"`
	Result    string `json:"result"`
}

// SessionResponse describes a stored session
type SessionResponse struct {
	ID              string    `json:"id"`
	Plaintext       string    `json:"plaintext"`
	PlaintextSize   int       `json:"plaintextSize"`
	SortBy          string    `json:"sortBy"`
	SortOrder       string    `json:"sortOrder"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

// SavePlaintextRequest represents the body of a store plaintext request
type SavePlaintextRequest struct {
	Plaintext string `json:"plaintext" validate:"max=65536"`
}

// Validate for validating SavePlaintextRequest struct
func (r *SavePlaintextRequest) Validate() error {
	return validateStruct(r)
}

// ToggleSortRequest selects a table column by name (e.g. "keySize") or index (e.g. "1")
type ToggleSortRequest struct {
	Column string `json:"column" validate:"required"`
}

// Validate for validating ToggleSortRequest struct
func (r *ToggleSortRequest) Validate() error {
	return validateStruct(r)
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return validate, nil
}

func validateStruct(s interface{}) error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// validateCipherRequest reports a too short key with the algorithm's own policy message.
func validateCipherRequest(s interface{}, algorithm, key string) error {
	if err := validateStruct(s); err != nil {
		if algo, lookupErr := algorithms.Lookup(algorithm); lookupErr == nil && key != "" {
			if keyErr := algo.ValidateKey(key); keyErr != nil {
				return keyErr
			}
		}
		return err
	}
	return nil
}
