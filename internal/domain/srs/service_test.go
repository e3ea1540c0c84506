package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

func TestServiceInitialState(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	wordID := uuid.New()

	state, err := service.InitialState(wordID, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.WordID != wordID {
		t.Errorf("Expected word ID %s, got %s", wordID, state.WordID)
	}

	if state.Stability != 0 || state.Difficulty != 0 || state.Retrievability != 1 {
		t.Errorf("Expected fresh state, got %+v", state)
	}

	if !state.NextReview.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("Expected first review a day out, got %v", state.NextReview)
	}
}

func TestServiceCalculateNextReviewValidation(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Now().UTC()

	_, err := service.CalculateNextReview(nil, domain.ReviewOutcomeGood, now)
	if !errors.Is(err, ErrNilState) {
		t.Errorf("Expected ErrNilState, got %v", err)
	}

	state, err := domain.NewMemoryState(uuid.New(), now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = service.CalculateNextReview(state, domain.ReviewOutcome(9), now)
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("Expected ErrInvalidOutcome, got %v", err)
	}
}

func TestServiceCalculateNextReviewAgainCollapse(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	state := &domain.MemoryState{
		WordID:         uuid.New(),
		Difficulty:     4,
		Stability:      10,
		Retrievability: 0.95,
		LastReview:     now.AddDate(0, 0, -5),
		NextReview:     now,
		ReviewCount:    6,
		CreatedAt:      now.AddDate(0, -2, 0),
		UpdatedAt:      now.AddDate(0, 0, -5),
	}

	newState, err := service.CalculateNextReview(state, domain.ReviewOutcomeAgain, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if newState.Stability != 2.0 {
		t.Errorf("Expected stability 2.0 (collapse to a fifth), got %f", newState.Stability)
	}

	expectedNext := now.Add(6 * time.Hour)
	if !newState.NextReview.Equal(expectedNext) {
		t.Errorf("Expected next review %v, got %v", expectedNext, newState.NextReview)
	}

	if newState.ReviewCount != 7 {
		t.Errorf("Expected review count 7, got %d", newState.ReviewCount)
	}
}

func TestServicePostponeReview(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	state, err := domain.NewMemoryState(uuid.New(), now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	postponed, err := service.PostponeReview(state, 3, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := state.NextReview.AddDate(0, 0, 3)
	if !postponed.NextReview.Equal(expected) {
		t.Errorf("Expected next review %v, got %v", expected, postponed.NextReview)
	}

	if postponed.ReviewCount != state.ReviewCount {
		t.Error("Expected postpone to leave review count unchanged")
	}

	_, err = service.PostponeReview(state, 0, now)
	if !errors.Is(err, ErrInvalidDays) {
		t.Errorf("Expected ErrInvalidDays, got %v", err)
	}

	_, err = service.PostponeReview(nil, 2, now)
	if !errors.Is(err, ErrNilState) {
		t.Errorf("Expected ErrNilState, got %v", err)
	}
}
