package middleware

import (
	"net/http"
	"strings"

	"deploystack/base-services/internal/auth"
	"deploystack/base-services/internal/logging"
)

// RequireAdmin guards the template's example protected route. Requests must
// carry a valid admin bearer token; an empty secret disables the surface
// entirely.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				http.Error(w, "Admin surface disabled", http.StatusNotFound)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if _, err := auth.ParseAdminToken(secret, token); err != nil {
				logging.Warn("Admin token rejected", "error", err.Error())
				http.Error(w, "Unauthorized. Invalid admin token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
