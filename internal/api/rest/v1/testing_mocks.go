//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"

	"github.com/stretchr/testify/mock"
)

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, algorithm, key, plaintext string) (string, error) {
	args := m.Called(ctx, algorithm, key, plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, algorithm, key, ciphertext string) (string, error) {
	args := m.Called(ctx, algorithm, key, ciphertext)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) RunExample(ctx context.Context, algorithm string) (*ciphers.ExampleResult, error) {
	args := m.Called(ctx, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ciphers.ExampleResult), args.Error(1)
}

func (m *MockCipherService) GenerateKey(ctx context.Context, algorithm string) (string, error) {
	args := m.Called(ctx, algorithm)
	return args.String(0), args.Error(1)
}

// MockPerformanceService is a mock implementation of PerformanceService
type MockPerformanceService struct {
	mock.Mock
}

func (m *MockPerformanceService) Curve(ctx context.Context, algorithm string) (*algorithms.PerformanceReport, error) {
	args := m.Called(ctx, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*algorithms.PerformanceReport), args.Error(1)
}

// MockKeyspaceService is a mock implementation of KeyspaceService
type MockKeyspaceService struct {
	mock.Mock
}

func (m *MockKeyspaceService) Describe(ctx context.Context, keyBitLength int) (*keyspace.Report, error) {
	args := m.Called(ctx, keyBitLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keyspace.Report), args.Error(1)
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Table(ctx context.Context, plaintextSize int, state analysis.SortState) (*analysis.Table, error) {
	args := m.Called(ctx, plaintextSize, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.Table), args.Error(1)
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*sessions.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) SavePlaintext(ctx context.Context, sessionID, plaintext string) (*sessions.Session, error) {
	args := m.Called(ctx, sessionID, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) ToggleSort(ctx context.Context, sessionID string, column analysis.Column) (*sessions.Session, error) {
	args := m.Called(ctx, sessionID, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
