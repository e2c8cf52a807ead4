package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/models/dtos"
	"flightops/frms/internal/seating"
)

// SeatEditor is the slice of SeatEditService the seat handler uses.
type SeatEditor interface {
	ApplyManualSeat(ctx context.Context, flightNo string, req dtos.UpdateSeatRequest) (*dtos.SeatChangeResult, error)
}

// UpdateSeatHandler handles POST /api/v1/flights/{flight_no}/seats.
// Rejections map to client errors carrying the validator's reason string;
// the snapshot is untouched on every rejection.
func UpdateSeatHandler(svc SeatEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		var req dtos.UpdateSeatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.ApplyManualSeat(r.Context(), flightNo, req)
		if err != nil {
			respondSeatError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

func respondSeatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, seating.ErrInvalidSeat),
		errors.Is(err, seating.ErrInfantSeating),
		errors.Is(err, seating.ErrClassMismatch):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, seating.ErrPassengerNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, seating.ErrSeatOccupied):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repositories.ErrNoRoster):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
