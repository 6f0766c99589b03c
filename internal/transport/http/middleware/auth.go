package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vedran77/devtree/internal/domain"
	"github.com/vedran77/devtree/internal/token"
)

type contextKey string

const userKey contextKey = "user"

// UserLoader resolves the account referenced by a verified token.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Auth gates a route behind a bearer token. On success the resolved account
// travels in the request context; routes without this middleware are public.
func Auth(tokens *token.JWT, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			bearer, ok := strings.CutPrefix(header, "Bearer ")
			if header == "" || !ok || bearer == "" {
				jsonError(w, http.StatusUnauthorized, "token ausente")
				return
			}

			userID, err := tokens.Verify(bearer)
			if err != nil {
				jsonError(w, http.StatusUnauthorized, "token no válido")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || user == nil {
				// valid token, but the account is gone
				jsonError(w, http.StatusUnauthorized, "El usuario no existe")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the account the auth middleware attached.
// Only call it from handlers mounted behind Auth.
func CurrentUser(ctx context.Context) *domain.User {
	return ctx.Value(userKey).(*domain.User)
}
