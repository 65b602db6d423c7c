package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillshare-backend/internal/delivery/http/middleware"
	"skillshare-backend/internal/logger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims map[string]any) string {
	t.Helper()

	builder := jwt.NewBuilder().
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour))
	for k, v := range claims {
		builder = builder.Claim(k, v)
	}
	token, err := builder.Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secret)))
	require.NoError(t, err)
	return string(signed)
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	log := logger.New("test")
	auth := middleware.NewAuthMiddleware(testSecret, log)

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = middleware.CallerEmail(r)
		w.WriteHeader(http.StatusOK)
	})
	protected := auth.RequireAuth(next)

	t.Run("ValidToken", func(t *testing.T) {
		gotEmail = ""
		token := signToken(t, testSecret, map[string]any{"email": "alice@example.com"})

		req := httptest.NewRequest(http.MethodGet, "/api/posts/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", gotEmail)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/public", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/public", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token := signToken(t, "some-other-secret", map[string]any{"email": "alice@example.com"})

		req := httptest.NewRequest(http.MethodGet, "/api/posts/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		builder := jwt.NewBuilder().
			IssuedAt(time.Now().Add(-2 * time.Hour)).
			Expiration(time.Now().Add(-time.Hour)).
			Claim("email", "alice@example.com")
		token, err := builder.Build()
		require.NoError(t, err)
		signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(testSecret)))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/public", nil)
		req.Header.Set("Authorization", "Bearer "+string(signed))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MissingEmailClaim", func(t *testing.T) {
		token := signToken(t, testSecret, map[string]any{"sub": "alice"})

		req := httptest.NewRequest(http.MethodGet, "/api/posts/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
