package models

import (
	"time"

	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"
)

// SessionModel is the GORM database model for sessions (infrastructure concern)
type SessionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Plaintext       string    `gorm:"type:text"`
	PlaintextSize   int       `gorm:"type:integer;not null;default:0"`
	SortColumn      int       `gorm:"type:integer;not null;default:0"`
	SortAscending   bool      `gorm:"not null;default:true"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *sessions.Session {
	return &sessions.Session{
		ID:              m.ID,
		Plaintext:       m.Plaintext,
		PlaintextSize:   m.PlaintextSize,
		SortColumn:      m.SortColumn,
		SortAscending:   m.SortAscending,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *sessions.Session) {
	m.ID = s.ID
	m.Plaintext = s.Plaintext
	m.PlaintextSize = s.PlaintextSize
	m.SortColumn = s.SortColumn
	m.SortAscending = s.SortAscending
	m.DateTimeCreated = s.DateTimeCreated
	m.DateTimeUpdated = s.DateTimeUpdated
}
