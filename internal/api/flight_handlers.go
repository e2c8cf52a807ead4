package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops/frms/internal/models/dtos"
	"flightops/frms/internal/models/entities"
	"flightops/frms/internal/services"
)

const defaultFlightListLimit = 50

// ListFlightsHandler handles GET /api/v1/flights. Query parameters act as
// search filters; without any, the next scheduled flights are listed.
func ListFlightsHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := dtos.FlightSearchRequest{
			FlightNo:    q.Get("flight_no"),
			Date:        q.Get("date"),
			Source:      q.Get("source"),
			Destination: q.Get("destination"),
		}

		var flights []entities.Flight
		var err error
		if req == (dtos.FlightSearchRequest{}) {
			flights, err = svc.List(r.Context(), defaultFlightListLimit)
		} else {
			flights, err = svc.Search(r.Context(), req)
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondWithSuccess(w, http.StatusOK, &flights)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{flight_no}.
func GetFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		flight, err := svc.Get(r.Context(), flightNo)
		if err != nil {
			respondWithError(w, http.StatusNotFound, "flight not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, flight)
	}
}
