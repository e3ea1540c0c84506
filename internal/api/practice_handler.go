package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wordvault/wordvault-api/internal/api/shared"
	"github.com/wordvault/wordvault-api/internal/config"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/service/practice"
)

// PracticeHandler handles practice-session HTTP requests.
type PracticeHandler struct {
	selector practice.PracticeSelector
	cfg      config.PracticeConfig
	logger   *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(
	selector practice.PracticeSelector,
	cfg config.PracticeConfig,
	logger *slog.Logger,
) *PracticeHandler {
	if selector == nil {
		panic("selector cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PracticeHandler{
		selector: selector,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "practice_handler")),
	}
}

// SelectWords handles GET /api/practice requests. The optional limit query
// parameter is clamped to the configured maximum; omitting it uses the
// configured default.
func (h *PracticeHandler) SelectWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit := h.cfg.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid practice limit")
			return
		}
		limit = parsed
	}
	if limit > h.cfg.MaxLimit {
		limit = h.cfg.MaxLimit
	}

	wordIDs, err := h.selector.SelectWords(r.Context(), limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("assembled practice session", slog.Int("words", len(wordIDs)))
	shared.RespondWithJSON(w, r, http.StatusOK, PracticeResponse{WordIDs: wordIDs})
}
