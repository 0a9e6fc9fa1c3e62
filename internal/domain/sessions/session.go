package sessions

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf16"

	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session exists for an ID.
var ErrSessionNotFound = errors.New("session not found")

// Session entity
type Session struct {
	ID              string `validate:"required,uuid4"`
	Plaintext       string `validate:"max=65536"`
	PlaintextSize   int    `validate:"min=0"`
	SortColumn      int    `validate:"min=0,max=3"`
	SortAscending   bool
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// NewSession creates a session with an empty plaintext, sorted by name ascending.
func NewSession() *Session {
	now := time.Now()
	state := analysis.NewSortState()
	return &Session{
		ID:              uuid.New().String(),
		SortColumn:      int(state.Column),
		SortAscending:   state.Ascending,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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

// SetPlaintext stores plaintext and records its length in UTF-16 code units,
// the length a browser text field reports.
func (s *Session) SetPlaintext(plaintext string) {
	s.Plaintext = plaintext
	s.PlaintextSize = utf16Length(plaintext)
	s.DateTimeUpdated = time.Now()
}

// utf16Length counts characters outside the Basic Multilingual Plane twice.
// Invalid UTF-8 bytes decode to U+FFFD and count once.
func utf16Length(text string) int {
	length := 0
	for _, r := range text {
		length += utf16.RuneLen(r)
	}
	return length
}

// SortState returns the stored table sort state.
func (s *Session) SortState() analysis.SortState {
	return analysis.SortState{
		Column:    analysis.Column(s.SortColumn),
		Ascending: s.SortAscending,
	}
}

// ToggleSort applies analysis.SortState.Toggle to the stored sort state.
func (s *Session) ToggleSort(column analysis.Column) error {
	state := s.SortState()
	if err := state.Toggle(column); err != nil {
		return err
	}

	s.SortColumn = int(state.Column)
	s.SortAscending = state.Ascending
	s.DateTimeUpdated = time.Now()
	return nil
}

// EffectivePlaintextSize returns the stored plaintext size, or the analysis default when nothing was stored.
func (s *Session) EffectivePlaintextSize(defaultSize int) int {
	if s.PlaintextSize > 0 {
		return s.PlaintextSize
	}
	return defaultSize
}
