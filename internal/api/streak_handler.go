package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wordvault/wordvault-api/internal/api/shared"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/service/streak"
)

// StreakHandler handles streak-reporting HTTP requests.
type StreakHandler struct {
	calculator streak.StreakCalculator
	logger     *slog.Logger
}

// NewStreakHandler creates a new StreakHandler.
func NewStreakHandler(calculator streak.StreakCalculator, logger *slog.Logger) *StreakHandler {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StreakHandler{
		calculator: calculator,
		logger:     logger.With(slog.String("component", "streak_handler")),
	}
}

// GetStreak handles GET /api/streak requests. The optional tz query
// parameter names an IANA zone for calendar-day boundaries; it defaults
// to UTC.
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	loc := time.UTC
	if tz := r.URL.Query().Get("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown timezone")
			return
		}
		loc = parsed
	}

	days, err := h.calculator.CurrentStreak(r.Context(), loc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("reported streak", slog.Int("days", days))
	shared.RespondWithJSON(w, r, http.StatusOK, StreakResponse{StreakDays: days})
}
