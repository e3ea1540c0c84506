package srs

import (
	"math"
	"time"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// calculateNewDifficulty determines the new difficulty based on the review outcome.
//
// Difficulty is a per-learner estimate of how hard this word is to recall -
// higher values mean a harder word, which damps stability growth and shortens
// intervals. Each outcome shifts difficulty by a fixed delta from the params
// (Again and Hard push it up, Good and Easy pull it down), and the result is
// clamped into [MinDifficulty, MaxDifficulty].
func calculateNewDifficulty(
	current float64,
	outcome domain.ReviewOutcome,
	params *Params,
) float64 {
	newDifficulty := current + params.DifficultyDelta[outcome]

	if newDifficulty < params.MinDifficulty {
		newDifficulty = params.MinDifficulty
	}
	if newDifficulty > params.MaxDifficulty {
		newDifficulty = params.MaxDifficulty
	}

	return newDifficulty
}

// calculateRetrievability recomputes the predicted recall probability just
// before the current review.
//
// For a word that has been reviewed before, retrievability follows the
// forgetting curve R = DecayBase^(t/S), where t is the elapsed time since the
// last review in days and S is the stability recorded at that review. A word
// that has never been reviewed keeps its initialized value of 1.
//
// Stability is structurally floored at MinStability once a review has
// occurred, so the division is safe; the guard below only covers states that
// bypassed the domain validation.
func calculateRetrievability(
	state *domain.MemoryState,
	now time.Time,
	params *Params,
) float64 {
	if !state.Reviewed() {
		return 1
	}

	if state.Stability <= 0 {
		return 1
	}

	elapsedDays := now.Sub(state.LastReview).Hours() / 24
	if elapsedDays < 0 {
		elapsedDays = 0
	}

	return math.Pow(params.DecayBase, elapsedDays/state.Stability)
}

// calculateNewStability determines the new stability based on the review outcome.
//
// On an Again outcome stability collapses sharply: S' = max(MinStability,
// S * AgainStabilityFactor). For the other outcomes it grows by
//
//	S' = S * (1 + baseFactor(outcome) * (1 - R) * exp(-w * D'))
//
// so a near-miss (low retrievability) strengthens the memory more than an
// easy recall, and inherently harder words grow more slowly.
//
// The stored stability 0 is the fresh sentinel; the first accepted review
// seeds it with FirstReviewStability before applying the growth rule.
func calculateNewStability(
	current float64,
	retrievability float64,
	newDifficulty float64,
	outcome domain.ReviewOutcome,
	params *Params,
) float64 {
	if outcome == domain.ReviewOutcomeAgain {
		return math.Max(params.MinStability, current*params.AgainStabilityFactor)
	}

	if current == 0 {
		current = params.FirstReviewStability
	}

	increaseFactor := params.StabilityBaseFactor[outcome] *
		(1 - retrievability) *
		math.Exp(-params.DifficultyStabilityWeight*newDifficulty)

	return current * (1 + increaseFactor)
}

// calculateNextInterval determines the next review interval in days.
//
// An Again outcome always schedules a fixed short retry (AgainIntervalDays,
// about six hours). Otherwise the interval is the new stability damped by
// difficulty, interval = S' * exp(-w * D'), floored at MinIntervalDays.
func calculateNextInterval(
	newStability float64,
	newDifficulty float64,
	outcome domain.ReviewOutcome,
	params *Params,
) float64 {
	if outcome == domain.ReviewOutcomeAgain {
		return params.AgainIntervalDays
	}

	interval := newStability * math.Exp(-params.IntervalDampingWeight*newDifficulty)
	return math.Max(params.MinIntervalDays, interval)
}

// calculateNextReviewDate converts the interval into the next due timestamp.
//
// Again outcomes use sub-day scheduling (a duration offset), all other
// outcomes round the interval to whole calendar days.
func calculateNextReviewDate(
	interval float64,
	outcome domain.ReviewOutcome,
	now time.Time,
	params *Params,
) time.Time {
	if outcome == domain.ReviewOutcomeAgain {
		return now.Add(time.Duration(interval * 24 * float64(time.Hour)))
	}

	return now.AddDate(0, 0, int(math.Round(interval)))
}

// calculateNextState creates a new MemoryState with updated values based on
// the review outcome.
//
// It follows the immutable update pattern: the input state is never modified,
// a fresh copy carries the new values. The update is fully deterministic for
// a given (state, outcome, now) triple.
//
// Order matters: difficulty updates first, retrievability is computed against
// the prior stability and last-review time, then stability grows (or
// collapses) using the new difficulty, and finally the interval and next due
// date derive from the new stability and difficulty.
func calculateNextState(
	state *domain.MemoryState,
	outcome domain.ReviewOutcome,
	now time.Time,
	params *Params,
) *domain.MemoryState {
	newState := state.Clone()

	newState.Difficulty = calculateNewDifficulty(state.Difficulty, outcome, params)

	newState.Retrievability = calculateRetrievability(state, now, params)

	newState.Stability = calculateNewStability(
		state.Stability,
		newState.Retrievability,
		newState.Difficulty,
		outcome,
		params,
	)

	interval := calculateNextInterval(newState.Stability, newState.Difficulty, outcome, params)
	newState.NextReview = calculateNextReviewDate(interval, outcome, now, params)

	newState.LastReview = now
	newState.ReviewCount = state.ReviewCount + 1
	newState.UpdatedAt = now

	return newState
}
