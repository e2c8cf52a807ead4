package api

import (
	"net/http"

	"flightops/frms/internal/db/repositories"
)

// ListPilotsHandler handles GET /api/v1/crew/pilots.
func ListPilotsHandler(repo *repositories.CrewRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pilots, err := repo.ListPilots(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondWithSuccess(w, http.StatusOK, &pilots)
	}
}

// ListAttendantsHandler handles GET /api/v1/crew/cabin.
func ListAttendantsHandler(repo *repositories.CrewRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attendants, err := repo.ListAttendants(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondWithSuccess(w, http.StatusOK, &attendants)
	}
}
