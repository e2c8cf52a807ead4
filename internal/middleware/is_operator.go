package middleware

import (
	"net/http"

	"flightops/frms/internal/auth"
)

// IsOperatorMiddleware admits operators and admins. Seat changes and
// roster generation are operator actions; viewers only read.
func IsOperatorMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if !auth.CanEditSeats(claims) {
				http.Error(w, "Unauthorized. Need operator perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
