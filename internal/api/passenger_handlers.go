package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"flightops/frms/internal/db/repositories"
)

// ListPassengersHandler handles GET /api/v1/flights/{flight_no}/passengers,
// returning the live passenger rows for a flight.
func ListPassengersHandler(repo *repositories.PassengerRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		passengers, err := repo.ListByFlight(r.Context(), flightNo)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondWithSuccess(w, http.StatusOK, &passengers)
	}
}

// DeletePassengerHandler handles DELETE /api/v1/passengers/{passenger_id}
// (admin only). Stored roster snapshots are immutable history and keep
// the passenger; only the live row goes away.
func DeletePassengerHandler(repo *repositories.PassengerRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "passenger_id"), 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid passenger id")
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			respondWithError(w, http.StatusNotFound, "passenger not found")
			return
		}
		msg := "passenger deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
