package services

import (
	"context"

	"flightops/frms/internal/models/entities"
)

// FlightSource supplies flight records to the roster services. Satisfied
// by repositories.FlightRepository; mocked in tests.
type FlightSource interface {
	FindByFlightNo(ctx context.Context, flightNo string) (*entities.Flight, error)
}

// CrewSource supplies the crew pools the roster service picks from.
// Satisfied by repositories.CrewRepository.
type CrewSource interface {
	PilotsForFlight(ctx context.Context, vehicleType string, distanceKm int) ([]entities.Pilot, error)
	ListAttendants(ctx context.Context) ([]entities.Attendant, error)
}

// AuditSink receives audit trail entries. Satisfied by
// repositories.AuditRepository. Services treat a nil sink as "no audit".
type AuditSink interface {
	Insert(ctx context.Context, userEmail *string, level, action, details string) error
}
