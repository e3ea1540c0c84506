package api

import (
	"log/slog"
	"net/http"

	"github.com/wordvault/wordvault-api/internal/api/shared"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/service"
)

// WordHandler handles vocabulary management HTTP requests.
type WordHandler struct {
	wordService service.WordService
	logger      *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(wordService service.WordService, logger *slog.Logger) *WordHandler {
	if wordService == nil {
		panic("wordService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WordHandler{
		wordService: wordService,
		logger:      logger.With(slog.String("component", "word_handler")),
	}
}

// RegisterWord handles POST /api/words requests.
func (h *WordHandler) RegisterWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed word registration body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Term is required")
		return
	}

	word, err := h.wordService.RegisterWord(r.Context(), req.Term, req.Definition)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(word))
}

// GetWord handles GET /api/words/{id} requests.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	word, err := h.wordService.GetWord(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// DeleteWord handles DELETE /api/words/{id} requests.
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.wordService.RemoveWord(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
