package srs

import (
	"github.com/wordvault/wordvault-api/internal/domain"
)

// Params defines all configurable parameters for the forgetting-curve model.
type Params struct {
	// Difficulty limits; difficulty is clamped into this range after
	// every update.
	MinDifficulty float64
	MaxDifficulty float64

	// Additive difficulty adjustments per review outcome.
	DifficultyDelta map[domain.ReviewOutcome]float64

	// Base stability growth factors for the non-Again outcomes. The
	// effective growth is scaled down by high retrievability and high
	// difficulty.
	StabilityBaseFactor map[domain.ReviewOutcome]float64

	// DecayBase is the base of the retrievability decay curve:
	// R = DecayBase^(elapsedDays / stability).
	DecayBase float64

	// MinStability floors stability after any accepted review so the
	// decay curve never divides by zero.
	MinStability float64

	// AgainStabilityFactor is the multiplicative collapse applied to
	// stability on an Again outcome.
	AgainStabilityFactor float64

	// FirstReviewStability seeds stability on the first accepted review,
	// since the stored value 0 is the "never reviewed" sentinel.
	FirstReviewStability float64

	// DifficultyStabilityWeight scales how strongly difficulty damps
	// stability growth: growth *= exp(-weight * difficulty).
	DifficultyStabilityWeight float64

	// IntervalDampingWeight scales how strongly difficulty shortens the
	// review interval: interval = stability * exp(-weight * difficulty).
	IntervalDampingWeight float64

	// AgainIntervalDays is the fixed short interval after an Again
	// outcome (0.25 days, about six hours).
	AgainIntervalDays float64

	// MinIntervalDays floors the interval for non-Again outcomes.
	MinIntervalDays float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinDifficulty: 0,
		MaxDifficulty: 10,

		DifficultyDelta: map[domain.ReviewOutcome]float64{
			domain.ReviewOutcomeAgain: 1.2,
			domain.ReviewOutcomeHard:  0.3,
			domain.ReviewOutcomeGood:  -0.1,
			domain.ReviewOutcomeEasy:  -0.3,
		},

		StabilityBaseFactor: map[domain.ReviewOutcome]float64{
			domain.ReviewOutcomeHard: 0.5,
			domain.ReviewOutcomeGood: 1.0,
			domain.ReviewOutcomeEasy: 1.5,
		},

		DecayBase:                 0.9,
		MinStability:              0.1,
		AgainStabilityFactor:      0.2,
		FirstReviewStability:      1.0,
		DifficultyStabilityWeight: 0.5,
		IntervalDampingWeight:     0.1,
		AgainIntervalDays:         0.25,
		MinIntervalDays:           1,
	}
}
