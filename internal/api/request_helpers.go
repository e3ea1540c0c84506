package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters.
// Returns a domain.ErrInvalidID-wrapped error if the parameter is missing
// or not a valid UUID, so the standard error mapping yields a 400.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid UUID", domain.ErrInvalidID, paramName)
	}

	return id, nil
}
