package sessions

import (
	"context"

	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
)

// SessionService defines methods for managing the state kept between page visits.
type SessionService interface {
	// Create creates and persists a fresh session.
	Create(ctx context.Context) (*Session, error)

	// GetByID retrieves a session by its unique ID.
	GetByID(ctx context.Context, sessionID string) (*Session, error)

	// SavePlaintext stores the plaintext and its size for the session.
	SavePlaintext(ctx context.Context, sessionID, plaintext string) (*Session, error)

	// ToggleSort selects the sort column of the session's analysis table.
	ToggleSort(ctx context.Context, sessionID string, column analysis.Column) (*Session, error)

	// DeleteByID deletes a session by its unique ID.
	DeleteByID(ctx context.Context, sessionID string) error
}

// SessionRepository defines the interface for Session-related operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	UpdateByID(ctx context.Context, session *Session) error
	DeleteByID(ctx context.Context, sessionID string) error
}
