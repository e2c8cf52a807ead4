package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"flightops/frms/internal/common"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/logging"
	"flightops/frms/internal/metrics"
	"flightops/frms/internal/models/dtos"
	gormModels "flightops/frms/internal/models/gorm"
	"flightops/frms/internal/seating"
)

// SeatEditService validates and applies manual seat changes against one
// stored roster snapshot, then mirrors the new seat onto the live
// passenger row as a best-effort secondary write.
type SeatEditService struct {
	rosters    *repositories.RosterRepository
	passengers *repositories.PassengerRepository
	cache      *common.CacheService
	audit      AuditSink
	metrics    *metrics.MetricsRegistry

	// One edit per flight at a time; the seating core does no locking of
	// its own.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSeatEditService(
	rosters *repositories.RosterRepository,
	passengers *repositories.PassengerRepository,
	cache *common.CacheService,
	audit AuditSink,
	metricsReg *metrics.MetricsRegistry,
) *SeatEditService {
	return &SeatEditService{
		rosters:    rosters,
		passengers: passengers,
		cache:      cache,
		audit:      audit,
		metrics:    metricsReg,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (svc *SeatEditService) flightLock(flightNo string) *sync.Mutex {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if lock, ok := svc.locks[flightNo]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	svc.locks[flightNo] = lock
	return lock
}

// ApplyManualSeat moves one passenger on one snapshot. The snapshot is
// addressed by id when the request carries one, otherwise the flight's
// latest snapshot is targeted. On rejection (one of the seating sentinel
// errors) nothing is written. A failed mirror write does not roll back
// the snapshot update; it is reported in the result instead.
func (svc *SeatEditService) ApplyManualSeat(ctx context.Context, flightNo string, req dtos.UpdateSeatRequest) (*dtos.SeatChangeResult, error) {
	lock := svc.flightLock(flightNo)
	lock.Lock()
	defer lock.Unlock()

	snapshot, err := svc.loadSnapshot(ctx, flightNo, req.RosterID)
	if err != nil {
		return nil, err
	}

	var roster dtos.Roster
	if err := json.Unmarshal([]byte(snapshot.DataJSON), &roster); err != nil {
		return nil, fmt.Errorf("corrupt roster snapshot %d: %w", snapshot.ID, err)
	}

	change, err := seating.ApplyManualSeat(roster.Flight.VehicleType, roster.Passengers, req.PassengerID, req.SeatNo)
	if err != nil {
		if svc.metrics != nil {
			svc.metrics.SeatEditRejectionsTotal.WithLabelValues(err.Error()).Inc()
		}
		return nil, err
	}

	data, err := json.Marshal(roster)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}
	if err := svc.rosters.UpdateData(ctx, snapshot.ID, string(data)); err != nil {
		return nil, err
	}

	result := &dtos.SeatChangeResult{
		RosterID:    snapshot.ID,
		PassengerID: change.PassengerID,
		PrevSeat:    change.PrevSeat,
		NewSeat:     change.NewSeat,
	}

	// Secondary write onto the live passenger row. The snapshot update is
	// already committed; a failure here is surfaced, not rolled back.
	if err := svc.passengers.UpdateSeat(ctx, change.PassengerID, change.NewSeat); err != nil {
		result.MirrorError = err.Error()
		logging.Warn("Seat mirror write failed",
			"flight_no", flightNo,
			"roster_id", snapshot.ID,
			"passenger_id", change.PassengerID,
			"error", err.Error(),
		)
	}

	if svc.cache != nil {
		svc.cache.Delete(exportCacheKey(flightNo))
	}
	if svc.metrics != nil {
		svc.metrics.SeatEditsTotal.Inc()
	}
	if svc.audit != nil {
		_ = svc.audit.Insert(ctx, nil, "INFO", "ManualSeatChange",
			fmt.Sprintf("flight=%s roster_id=%d passenger_id=%d seat=%s prev=%s",
				flightNo, snapshot.ID, change.PassengerID, change.NewSeat, change.PrevSeat))
	}

	return result, nil
}

func (svc *SeatEditService) loadSnapshot(ctx context.Context, flightNo string, rosterID *int64) (*gormModels.Roster, error) {
	if rosterID == nil {
		return svc.rosters.LatestByFlight(ctx, flightNo)
	}

	snapshot, err := svc.rosters.FindByID(ctx, *rosterID)
	if err != nil {
		return nil, err
	}
	if snapshot.FlightNo != flightNo {
		return nil, repositories.ErrNoRoster
	}
	return snapshot, nil
}
