package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"
	"github.com/MGTheTrain/cipher-lab/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (sessions.SessionRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection must not be nil")
	}
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

// AutoMigrate creates or updates the tables backing the repositories
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.SessionModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *sessions.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("Created session with id ", session.ID)
	return nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", sessions.ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) UpdateByID(ctx context.Context, session *sessions.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	// Select("*") so that false and zero values are written as well
	result := r.db.WithContext(ctx).Model(&models.SessionModel{}).Where("id = ?", session.ID).Select("*").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", sessions.ErrSessionNotFound, session.ID)
	}

	r.logger.Info("Updated session with id ", session.ID)
	return nil
}

func (r *gormSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", sessionID).Delete(&models.SessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", sessions.ErrSessionNotFound, sessionID)
	}

	r.logger.Info("Deleted session with id ", sessionID)
	return nil
}
