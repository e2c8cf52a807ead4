package middleware

import (
	"net/http"
	"strings"

	"flightops/frms/internal/auth"
	"flightops/frms/internal/common"
)

// AuthMiddleware authenticates every request with a JWT bearer token and
// checks that the session the token is bound to still exists in Redis, so
// logged-out tokens stop working before their expiry.
func AuthMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			if _, err := sessions.GetSession(r.Context(), claims.SessionID()); err != nil {
				http.Error(w, "Unauthorized. Session expired", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
