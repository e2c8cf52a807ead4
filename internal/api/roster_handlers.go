package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/models/dtos"
	"flightops/frms/internal/services"
)

// RosterProvider is the slice of RosterService the roster handlers use;
// narrowed to an interface so handler tests can mock it.
type RosterProvider interface {
	Generate(ctx context.Context, flightNo string) (*dtos.RosterView, error)
	View(ctx context.Context, flightNo string) (*dtos.RosterView, error)
	Export(ctx context.Context, flightNo string) (json.RawMessage, error)
}

// ViewRosterHandler handles GET /api/v1/flights/{flight_no}/roster. It
// serves the latest snapshot, generating one when none exists yet.
func ViewRosterHandler(svc RosterProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		view, err := svc.View(r.Context(), flightNo)
		if err != nil {
			respondRosterError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, view)
	}
}

// GenerateRosterHandler handles POST /api/v1/flights/{flight_no}/roster.
// Every call creates a new snapshot; prior ones stay addressable.
func GenerateRosterHandler(svc RosterProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		view, err := svc.Generate(r.Context(), flightNo)
		if err != nil {
			respondRosterError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, view)
	}
}

// ExportRosterHandler handles GET /export/{flight_no}.json, returning the
// latest stored snapshot payload verbatim.
func ExportRosterHandler(svc RosterProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		raw, err := svc.Export(r.Context(), flightNo)
		if err != nil {
			respondRosterError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	}
}

// ArchiveRosterHandler handles POST /api/v1/flights/{flight_no}/roster/archive,
// copying the latest snapshot into the JSON archive file.
func ArchiveRosterHandler(svc *services.ArchiveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNo := chi.URLParam(r, "flight_no")

		if err := svc.SaveLatest(r.Context(), flightNo); err != nil {
			respondRosterError(w, err)
			return
		}
		msg := "roster archived"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

func respondRosterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrFlightNotFound):
		respondWithError(w, http.StatusNotFound, services.ErrFlightNotFound.Error())
	case errors.Is(err, repositories.ErrNoRoster):
		respondWithError(w, http.StatusNotFound, repositories.ErrNoRoster.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
