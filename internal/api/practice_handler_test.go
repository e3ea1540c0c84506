package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordvault/wordvault-api/internal/config"
)

// fakeSelector echoes back the limit it was asked for.
type fakeSelector struct {
	gotLimit int
	ids      []uuid.UUID
}

func (f *fakeSelector) SelectWords(ctx context.Context, limit int) ([]uuid.UUID, error) {
	f.gotLimit = limit
	return f.ids, nil
}

func practiceRouter(selector *fakeSelector) http.Handler {
	handler := NewPracticeHandler(selector, config.PracticeConfig{
		DefaultLimit: 10,
		MaxLimit:     50,
	}, nil)
	r := chi.NewRouter()
	r.Get("/api/practice", handler.SelectWords)
	return r
}

func getPractice(t *testing.T, router http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/practice"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSelectWordsHandler(t *testing.T) {
	selector := &fakeSelector{ids: []uuid.UUID{uuid.New(), uuid.New()}}
	router := practiceRouter(selector)

	w := getPractice(t, router, "?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, selector.gotLimit)

	var resp PracticeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.WordIDs, 2)
}

func TestSelectWordsHandlerDefaultLimit(t *testing.T) {
	selector := &fakeSelector{}
	router := practiceRouter(selector)

	w := getPractice(t, router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, selector.gotLimit)
}

func TestSelectWordsHandlerClampsToMax(t *testing.T) {
	selector := &fakeSelector{}
	router := practiceRouter(selector)

	w := getPractice(t, router, "?limit=500")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, selector.gotLimit)
}

func TestSelectWordsHandlerRejectsBadLimit(t *testing.T) {
	router := practiceRouter(&fakeSelector{})

	for _, query := range []string{"?limit=0", "?limit=-3", "?limit=ten"} {
		w := getPractice(t, router, query)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}
