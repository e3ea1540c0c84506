package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordvault/wordvault-api/internal/config"
	"github.com/wordvault/wordvault-api/internal/service/auth"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-at-least-32-characters",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func protectedHandler(t *testing.T, wantSubject uuid.UUID) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subjectID, ok := GetSubjectID(r)
		assert.True(t, ok)
		assert.Equal(t, wantSubject, subjectID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	svc := newTestJWTService(t)
	subjectID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), subjectID)
	require.NoError(t, err)

	mw := NewAuthMiddleware(svc)
	handler := mw.Authenticate(protectedHandler(t, subjectID))

	r := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWTService(t))
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWTService(t))
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		r := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
		r.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWTService(t))
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
	r.Header.Set("Authorization", "Bearer not.a.valid.token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
