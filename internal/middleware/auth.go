package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/statusfeed/statusfeed-go/internal/crypto"
	"github.com/statusfeed/statusfeed-go/internal/model"
	"github.com/statusfeed/statusfeed-go/internal/repository"
)

// SessionCookie is the cookie that carries the session token.
const SessionCookie = "jwt"

type contextKey string

const userKey contextKey = "user"

// Authenticate resolves the session cookie to a user, if possible.
//
// A request without a cookie proceeds as anonymous; whether that is acceptable
// is decided downstream. A cookie that fails verification is rejected
// outright. A verified token whose subject no longer exists in the store
// downgrades to anonymous rather than failing.
func Authenticate(secret string, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := crypto.ValidateToken(cookie.Value, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "authentication_failed", "Unauthorized")
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "internal", "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that did not resolve to an authenticated user.
// Must be chained after Authenticate.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "authentication_failed", "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

// ContextWithUser attaches a user to a context. Exported for handler tests.
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func writeJSONError(w http.ResponseWriter, status int, kind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg, "kind": kind})
}
