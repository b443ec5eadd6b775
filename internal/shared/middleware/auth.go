package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"expensetracker/internal/domain/user"
	"expensetracker/internal/shared/apperr"
	"expensetracker/internal/shared/auth"
)

type ContextKey string

const UserIDKey ContextKey = "user_id"

// UserGetter is the slice of the user repository the middleware needs to
// confirm a token's subject still exists.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// Auth authenticates requests with a bearer token. The token subject is
// resolved against the user store so a deleted user's still-valid token
// stops working immediately. The user ID lands in the request context
// under UserIDKey.
func Auth(issuer *auth.TokenIssuer, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r)
			if err != nil {
				writeAuthError(w, err)
				return
			}

			userID, err := issuer.Validate(token)
			if err != nil {
				writeAuthError(w, err)
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				writeAuthError(w, apperr.Internal(err))
				return
			}
			if u == nil {
				writeAuthError(w, apperr.Unauthorized("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request never passed through Auth.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

func writeAuthError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{"error": apperr.Message(err)})
}
