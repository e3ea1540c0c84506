package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// Common request/response structures

// RegisterWordRequest defines the payload for the word registration endpoint.
type RegisterWordRequest struct {
	Term       string `json:"term"       validate:"required,min=1,max=255"`
	Definition string `json:"definition" validate:"max=2000"`
}

// WordResponse represents the response data for a word.
type WordResponse struct {
	ID         uuid.UUID `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func wordToResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:         word.ID,
		Term:       word.Term,
		Definition: word.Definition,
		CreatedAt:  word.CreatedAt,
		UpdatedAt:  word.UpdatedAt,
	}
}

// ReviewRequest defines the payload for the review endpoint. The outcome is
// one of "again", "hard", "good", "easy".
type ReviewRequest struct {
	Outcome string `json:"outcome" validate:"required"`
}

// Review response statuses.
const (
	ReviewStatusRecorded = "recorded"
	ReviewStatusCooldown = "cooldown"
)

// ReviewResponse defines the response for the review endpoint. A rejected
// cooldown review still answers 200, with status "cooldown" and no state.
type ReviewResponse struct {
	Status string              `json:"status"`
	State  *domain.MemoryState `json:"state,omitempty"`
}

// PostponeRequest defines the payload for the postpone endpoint.
type PostponeRequest struct {
	Days int `json:"days" validate:"required,gte=1"`
}

// PracticeResponse defines the response for the practice-selection endpoint.
type PracticeResponse struct {
	WordIDs []uuid.UUID `json:"word_ids"`
}

// StreakResponse defines the response for the streak endpoint.
type StreakResponse struct {
	StreakDays int `json:"streak_days"`
}
