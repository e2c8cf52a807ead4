package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"flightops/frms/internal/auth"
	"flightops/frms/internal/models/dtos"
	"flightops/frms/internal/services"
)

// RegisterHandler handles POST /auth/register.
func RegisterHandler(svc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				respondWithError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrEmailTaken):
				respondWithError(w, http.StatusConflict, err.Error())
			default:
				respondWithError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		respondWithSuccess(w, http.StatusCreated, user)
	}
}

// LoginHandler handles POST /auth/login.
func LoginHandler(svc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				respondWithError(w, http.StatusUnauthorized, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// LogoutHandler handles POST /api/v1/auth/logout for the authenticated
// caller.
func LogoutHandler(svc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if err := svc.Logout(r.Context(), claims); err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		msg := "logged out"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
