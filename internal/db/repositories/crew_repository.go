package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"flightops/frms/internal/constants"
	"flightops/frms/internal/models/entities"
)

type CrewRepository struct {
	db *sqlx.DB
}

func NewCrewRepository(db *sqlx.DB) *CrewRepository {
	return &CrewRepository{db}
}

// PilotsForFlight returns pilots certified for the vehicle type whose
// range covers the flight distance, in insertion order. The roster
// service picks one per seniority from this list.
func (r *CrewRepository) PilotsForFlight(ctx context.Context, vehicleType string, distanceKm int) ([]entities.Pilot, error) {
	pilots := []entities.Pilot{}
	if err := r.db.SelectContext(ctx, &pilots, constants.GetPilotsForFlight, vehicleType, distanceKm); err != nil {
		return nil, err
	}
	return pilots, nil
}

func (r *CrewRepository) ListPilots(ctx context.Context) ([]entities.Pilot, error) {
	pilots := []entities.Pilot{}
	if err := r.db.SelectContext(ctx, &pilots, constants.ListPilots); err != nil {
		return nil, err
	}
	return pilots, nil
}

func (r *CrewRepository) ListAttendants(ctx context.Context) ([]entities.Attendant, error) {
	attendants := []entities.Attendant{}
	if err := r.db.SelectContext(ctx, &attendants, constants.ListAttendants); err != nil {
		return nil, err
	}
	return attendants, nil
}
