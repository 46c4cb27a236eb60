package middleware

import (
	"net/http"
	"strings"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/user"
)

// Middleware is a standard net/http middleware.
type Middleware = func(http.Handler) http.Handler

// RequireUser resolves the bearer token to a user and puts it on the
// request context. Requests without a valid token get 401.
func RequireUser(tokens *auth.Tokens, users *user.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.ParseAccess(raw)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			u, err := users.Get(r.Context(), userID)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u)))
		})
	}
}

// RequireFamily rejects authenticated users who do not belong to a family.
func RequireFamily(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := auth.UserFrom(r.Context())
		if u == nil || u.FamilyID == nil {
			http.Error(w, "not a family member", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
