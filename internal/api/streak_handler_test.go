package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStreakCalculator records the location it was asked to use.
type fakeStreakCalculator struct {
	days   int
	gotLoc *time.Location
}

func (f *fakeStreakCalculator) CurrentStreak(
	ctx context.Context,
	loc *time.Location,
) (int, error) {
	f.gotLoc = loc
	return f.days, nil
}

func streakRouter(calc *fakeStreakCalculator) http.Handler {
	handler := NewStreakHandler(calc, nil)
	r := chi.NewRouter()
	r.Get("/api/streak", handler.GetStreak)
	return r
}

func TestGetStreakHandler(t *testing.T) {
	calc := &fakeStreakCalculator{days: 7}
	router := streakRouter(calc)

	req := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.UTC, calc.gotLoc)

	var resp StreakResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.StreakDays)
}

func TestGetStreakHandlerTimezone(t *testing.T) {
	calc := &fakeStreakCalculator{days: 1}
	router := streakRouter(calc)

	req := httptest.NewRequest(http.MethodGet, "/api/streak?tz=Europe/Berlin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, calc.gotLoc)
	assert.Equal(t, "Europe/Berlin", calc.gotLoc.String())
}

func TestGetStreakHandlerUnknownTimezone(t *testing.T) {
	router := streakRouter(&fakeStreakCalculator{})

	req := httptest.NewRequest(http.MethodGet, "/api/streak?tz=Mars/Olympus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
