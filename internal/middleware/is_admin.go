package middleware

import (
	"net/http"

	"flightops/frms/internal/auth"
	"flightops/frms/internal/constants"
)

func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if claims == nil || claims.Role() != constants.RoleAdmin {
				http.Error(w, "Unauthorized. Need admin perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
