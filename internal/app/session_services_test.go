//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSessionService(t *testing.T) (sessions.SessionService, *MockSessionRepository) {
	t.Helper()
	repo := new(MockSessionRepository)
	service, err := NewSessionService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return service, repo
}

func TestSessionService_Create(t *testing.T) {
	service, repo := setupSessionService(t)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*sessions.Session")).Return(nil)

	session, err := service.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, int(analysis.ColumnName), session.SortColumn)
	assert.True(t, session.SortAscending)
	repo.AssertExpectations(t)
}

func TestSessionService_Create_RepositoryError(t *testing.T) {
	service, repo := setupSessionService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	session, err := service.Create(context.Background())
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestSessionService_SavePlaintext(t *testing.T) {
	service, repo := setupSessionService(t)
	stored := sessions.NewSession()

	repo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("UpdateByID", mock.Anything, mock.MatchedBy(func(s *sessions.Session) bool {
		return s.ID == stored.ID && s.Plaintext == "Hello, World!" && s.PlaintextSize == 13
	})).Return(nil)

	session, err := service.SavePlaintext(context.Background(), stored.ID, "Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, 13, session.PlaintextSize)
	repo.AssertExpectations(t)
}

func TestSessionService_SavePlaintext_NotFound(t *testing.T) {
	service, repo := setupSessionService(t)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, sessions.ErrSessionNotFound)

	_, err := service.SavePlaintext(context.Background(), "missing", "text")
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestSessionService_ToggleSort(t *testing.T) {
	service, repo := setupSessionService(t)
	stored := sessions.NewSession()

	repo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("UpdateByID", mock.Anything, mock.Anything).Return(nil)

	session, err := service.ToggleSort(context.Background(), stored.ID, analysis.ColumnName)
	require.NoError(t, err)
	assert.False(t, session.SortAscending)

	session, err = service.ToggleSort(context.Background(), stored.ID, analysis.ColumnKeySize)
	require.NoError(t, err)
	assert.Equal(t, int(analysis.ColumnKeySize), session.SortColumn)
	assert.True(t, session.SortAscending)
}

func TestSessionService_ToggleSort_InvalidColumn(t *testing.T) {
	service, repo := setupSessionService(t)
	stored := sessions.NewSession()
	repo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)

	_, err := service.ToggleSort(context.Background(), stored.ID, analysis.Column(4))
	assert.ErrorIs(t, err, analysis.ErrInvalidColumn)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestSessionService_GetAndDelete(t *testing.T) {
	service, repo := setupSessionService(t)
	stored := sessions.NewSession()

	repo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("DeleteByID", mock.Anything, stored.ID).Return(nil)

	session, err := service.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, session)

	require.NoError(t, service.DeleteByID(context.Background(), stored.ID))
	repo.AssertExpectations(t)
}

func TestNewSessionService_NilRepository(t *testing.T) {
	service, err := NewSessionService(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, service)
}
