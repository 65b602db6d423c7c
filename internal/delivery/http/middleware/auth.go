package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"skillshare-backend/internal/logger"
)

type contextKey string

const callerEmailKey contextKey = "caller_email"

// AuthMiddleware verifies the HS256 bearer tokens issued by the auth service
// and injects the caller's email into the request context.
type AuthMiddleware struct {
	secret []byte
	log    *logger.Logger
}

func NewAuthMiddleware(secret string, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		log:    log,
	}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		token, err := jwt.Parse([]byte(raw),
			jwt.WithKey(jwa.HS256, m.secret),
			jwt.WithValidate(true),
		)
		if err != nil {
			m.log.Debug("Rejected bearer token",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
			writeAuthError(w, "Invalid token")
			return
		}

		email, ok := token.Get("email")
		emailStr, isStr := email.(string)
		if !ok || !isStr || emailStr == "" {
			m.log.Debug("Token is missing email claim", slog.String("path", r.URL.Path))
			writeAuthError(w, "Token is missing email claim")
			return
		}

		ctx := context.WithValue(r.Context(), callerEmailKey, emailStr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerEmail returns the authenticated caller's email, or "" when the
// request did not pass through RequireAuth.
func CallerEmail(r *http.Request) string {
	email, _ := r.Context().Value(callerEmailKey).(string)
	return email
}

// WithCallerEmail injects a caller identity directly, for tests.
func WithCallerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, callerEmailKey, email)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    "AuthRequired",
			"message": message,
		},
	})
}
