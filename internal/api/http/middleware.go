package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/logger"
	"givehope-backend/internal/security"
	"givehope-backend/internal/service"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware verifies the bearer token and installs the caller's Actor
// in the request context. Every protected handler reads its identity from
// there; there is no other source of "who is calling".
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, security.ErrInvalidToken)
			return
		}
		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			writeError(w, err)
			return
		}
		actor := service.Actor{ID: claims.UserID, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// RequireRole rejects callers whose role is not in the allowed set.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorFrom(r)
			if !ok {
				writeError(w, security.ErrInvalidToken)
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, domain.ErrForbidden)
		})
	}
}

func actorFrom(r *http.Request) (service.Actor, bool) {
	actor, ok := r.Context().Value(actorKey).(service.Actor)
	return actor, ok
}

// RequestLogger logs one line per request with method, path, and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
