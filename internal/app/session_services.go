package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"
	"github.com/MGTheTrain/cipher-lab/internal/infrastructure/metrics"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"
)

// sessionService implements the SessionService interface
type sessionService struct {
	sessionRepo sessions.SessionRepository
	logger      logger.Logger
}

// NewSessionService creates a new sessionService instance
func NewSessionService(sessionRepo sessions.SessionRepository, logger logger.Logger) (sessions.SessionService, error) {
	if sessionRepo == nil {
		return nil, fmt.Errorf("session repository must not be nil")
	}
	return &sessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}, nil
}

func (s *sessionService) Create(ctx context.Context) (*sessions.Session, error) {
	session := sessions.NewSession()
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	metrics.SessionsCounter().Inc()
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *sessionService) SavePlaintext(ctx context.Context, sessionID, plaintext string) (*sessions.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.SetPlaintext(plaintext)
	if err := s.sessionRepo.UpdateByID(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save plaintext: %w", err)
	}

	return session, nil
}

func (s *sessionService) ToggleSort(ctx context.Context, sessionID string, column analysis.Column) (*sessions.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.ToggleSort(column); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.UpdateByID(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save sort state: %w", err)
	}

	return session, nil
}

func (s *sessionService) DeleteByID(ctx context.Context, sessionID string) error {
	return s.sessionRepo.DeleteByID(ctx, sessionID)
}
