package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"flightops/frms/internal/common"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/logging"
	"flightops/frms/internal/metrics"
	"flightops/frms/internal/models/dtos"
	"flightops/frms/internal/models/entities"
	gormModels "flightops/frms/internal/models/gorm"
	"flightops/frms/internal/seating"
)

// maxCabinCrew caps the cabin crew picked onto one roster.
const maxCabinCrew = 6

var ErrFlightNotFound = errors.New("flight not found")

// RosterService generates and serves roster snapshots. Generation runs
// the seat assignment engine over the flight's live passengers, picks the
// crew and stores the result as a new immutable snapshot.
type RosterService struct {
	flights    FlightSource
	crew       CrewSource
	passengers *repositories.PassengerRepository
	rosters    *repositories.RosterRepository
	cache      *common.CacheService
	audit      AuditSink
	metrics    *metrics.MetricsRegistry

	// generate is keyed by flight number so two concurrent generation
	// requests for one flight share a single engine run. The core itself
	// assumes a single writer per flight.
	generate singleflight.Group
}

func NewRosterService(
	flights FlightSource,
	crew CrewSource,
	passengers *repositories.PassengerRepository,
	rosters *repositories.RosterRepository,
	cache *common.CacheService,
	audit AuditSink,
	metricsReg *metrics.MetricsRegistry,
) *RosterService {
	return &RosterService{
		flights:    flights,
		crew:       crew,
		passengers: passengers,
		rosters:    rosters,
		cache:      cache,
		audit:      audit,
		metrics:    metricsReg,
	}
}

// Generate builds a new roster snapshot for the flight: crew pick, seat
// assignment over the live passenger list, then an INSERT of the snapshot.
// Prior snapshots are left untouched.
func (svc *RosterService) Generate(ctx context.Context, flightNo string) (*dtos.RosterView, error) {
	view, err, _ := svc.generate.Do(flightNo, func() (interface{}, error) {
		return svc.generateLocked(ctx, flightNo)
	})
	if err != nil {
		return nil, err
	}
	return view.(*dtos.RosterView), nil
}

func (svc *RosterService) generateLocked(ctx context.Context, flightNo string) (*dtos.RosterView, error) {
	start := time.Now()

	flight, err := svc.flights.FindByFlightNo(ctx, flightNo)
	if err != nil {
		return nil, ErrFlightNotFound
	}

	pilots, err := svc.pickPilots(ctx, flight)
	if err != nil {
		return nil, err
	}
	cabin, err := svc.pickCabinCrew(ctx, flight)
	if err != nil {
		return nil, err
	}

	rows, err := svc.passengers.ListByFlight(ctx, flightNo)
	if err != nil {
		return nil, err
	}
	passengers := toSeating(rows)

	seatedBefore := countSeated(passengers)
	seating.AssignSeats(flight.VehicleType, passengers)
	unseated := seating.Unseated(passengers)

	roster := dtos.Roster{
		Flight:     *flight,
		Pilots:     pilots,
		Cabin:      cabin,
		Passengers: passengers,
	}
	data, err := json.Marshal(roster)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}

	snapshot := gormModels.Roster{FlightNo: flightNo, DataJSON: string(data)}
	if err := svc.rosters.Insert(ctx, &snapshot); err != nil {
		return nil, err
	}

	if svc.cache != nil {
		svc.cache.Delete(exportCacheKey(flightNo))
	}
	if svc.metrics != nil {
		svc.metrics.RostersGeneratedTotal.WithLabelValues(flightNo).Inc()
		svc.metrics.SeatsAssignedTotal.Add(float64(countSeated(passengers) - seatedBefore))
		svc.metrics.PassengersUnseatedTotal.Add(float64(unseated))
		svc.metrics.RosterGenerationDuration.Observe(time.Since(start).Seconds())
	}
	if svc.audit != nil {
		_ = svc.audit.Insert(ctx, nil, "INFO", "GenerateRoster",
			fmt.Sprintf("flight=%s roster_id=%d unseated=%d", flightNo, snapshot.ID, unseated))
	}

	logging.Info("Roster generated",
		"flight_no", flightNo,
		"roster_id", snapshot.ID,
		"passengers", len(passengers),
		"unseated", unseated,
	)

	return &dtos.RosterView{
		RosterID:  snapshot.ID,
		CreatedAt: snapshot.CreatedAt,
		Roster:    roster,
		SeatRows:  seating.BuildSeatRows(flight.VehicleType, passengers),
		Unseated:  unseated,
	}, nil
}

// View serves the latest stored snapshot with its cabin grid, generating
// a first snapshot when the flight has none yet.
func (svc *RosterService) View(ctx context.Context, flightNo string) (*dtos.RosterView, error) {
	snapshot, err := svc.rosters.LatestByFlight(ctx, flightNo)
	if errors.Is(err, repositories.ErrNoRoster) {
		return svc.Generate(ctx, flightNo)
	}
	if err != nil {
		return nil, err
	}

	var roster dtos.Roster
	if err := json.Unmarshal([]byte(snapshot.DataJSON), &roster); err != nil {
		return nil, fmt.Errorf("corrupt roster snapshot %d: %w", snapshot.ID, err)
	}

	return &dtos.RosterView{
		RosterID:  snapshot.ID,
		CreatedAt: snapshot.CreatedAt,
		Roster:    roster,
		SeatRows:  seating.BuildSeatRows(roster.Flight.VehicleType, roster.Passengers),
		Unseated:  seating.Unseated(roster.Passengers),
	}, nil
}

// Export returns the latest snapshot payload verbatim, cached until the
// next generation or seat edit for the flight invalidates it.
func (svc *RosterService) Export(ctx context.Context, flightNo string) (json.RawMessage, error) {
	load := func() (any, error) {
		snapshot, err := svc.rosters.LatestByFlight(ctx, flightNo)
		if err != nil {
			return nil, err
		}
		return json.RawMessage(snapshot.DataJSON), nil
	}

	if svc.cache == nil {
		raw, err := load()
		if err != nil {
			return nil, err
		}
		return raw.(json.RawMessage), nil
	}

	raw, err := svc.cache.GetOrSet(exportCacheKey(flightNo), 60*time.Second, load)
	if err != nil {
		return nil, err
	}
	return raw.(json.RawMessage), nil
}

// pickPilots applies the crew rule: from pilots certified for the
// aircraft with enough range, take the first senior, first junior and
// first trainee.
func (svc *RosterService) pickPilots(ctx context.Context, flight *entities.Flight) ([]entities.Pilot, error) {
	pool, err := svc.crew.PilotsForFlight(ctx, flight.VehicleType, flight.DistanceKm)
	if err != nil {
		return nil, err
	}

	picked := []entities.Pilot{}
	for _, seniority := range []string{entities.SenioritySenior, entities.SeniorityJunior, entities.SeniorityTrainee} {
		for _, p := range pool {
			if p.Seniority == seniority {
				picked = append(picked, p)
				break
			}
		}
	}
	return picked, nil
}

// pickCabinCrew takes attendants certified for the aircraft type, capped
// at maxCabinCrew.
func (svc *RosterService) pickCabinCrew(ctx context.Context, flight *entities.Flight) ([]entities.Attendant, error) {
	pool, err := svc.crew.ListAttendants(ctx)
	if err != nil {
		return nil, err
	}

	picked := []entities.Attendant{}
	for _, a := range pool {
		if strings.Contains(a.VehicleTypes, flight.VehicleType) {
			picked = append(picked, a)
			if len(picked) == maxCabinCrew {
				break
			}
		}
	}
	return picked, nil
}

func exportCacheKey(flightNo string) string {
	return "export:" + flightNo
}
