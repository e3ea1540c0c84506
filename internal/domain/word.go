package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTermEmpty is returned when a word's term is empty.
	ErrWordTermEmpty = errors.New("word term cannot be empty")
)

// Word represents a single vocabulary item a learner is studying.
// The scheduling state for a word lives in its MemoryState; deleting a
// word removes its memory state with it.
type Word struct {
	ID         uuid.UUID `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewWord creates a new Word with the given term and definition.
// It generates a new UUID for the word ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewWord(term, definition string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:         uuid.New(),
		Term:       strings.TrimSpace(term),
		Definition: strings.TrimSpace(definition),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.Term == "" {
		return ErrWordTermEmpty
	}

	return nil
}
