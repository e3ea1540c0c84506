package srs

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// Common errors
var (
	ErrNilState       = errors.New("memory state cannot be nil")
	ErrInvalidOutcome = errors.New("invalid review outcome")
	ErrInvalidDays    = errors.New("postpone days must be at least 1")
)

// Service defines the interface for memory-model operations.
type Service interface {
	// InitialState returns the fixed initial memory state for a newly
	// registered word.
	InitialState(wordID uuid.UUID, now time.Time) (*domain.MemoryState, error)

	// CalculateNextReview computes a new state based on a review outcome.
	CalculateNextReview(
		state *domain.MemoryState,
		outcome domain.ReviewOutcome,
		now time.Time,
	) (*domain.MemoryState, error)

	// PostponeReview pushes the next review time forward by a specified
	// number of days without touching the memory model.
	PostponeReview(
		state *domain.MemoryState,
		days int,
		now time.Time,
	) (*domain.MemoryState, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new memory-model service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new memory-model service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// InitialState implements the Service interface for creating fresh states
func (s *defaultService) InitialState(
	wordID uuid.UUID,
	now time.Time,
) (*domain.MemoryState, error) {
	return domain.NewMemoryState(wordID, now)
}

// CalculateNextReview implements the Service interface for calculating updated states
func (s *defaultService) CalculateNextReview(
	state *domain.MemoryState,
	outcome domain.ReviewOutcome,
	now time.Time,
) (*domain.MemoryState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	return calculateNextState(state, outcome, now, s.params), nil
}

// PostponeReview implements the Service interface for postponing reviews
func (s *defaultService) PostponeReview(
	state *domain.MemoryState,
	days int,
	now time.Time,
) (*domain.MemoryState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if days < 1 {
		return nil, ErrInvalidDays
	}

	newState := state.Clone()
	newState.NextReview = state.NextReview.AddDate(0, 0, days)
	newState.UpdatedAt = now

	return newState, nil
}
