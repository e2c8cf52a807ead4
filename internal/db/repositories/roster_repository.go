package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "flightops/frms/internal/models/gorm"
)

// ErrNoRoster is returned when a flight has no stored snapshot yet.
var ErrNoRoster = errors.New("no roster found")

type RosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Insert stores a new snapshot. Every roster generation inserts; existing
// snapshots are never replaced.
func (r *RosterRepository) Insert(ctx context.Context, roster *gormModels.Roster) error {
	if err := r.db.WithContext(ctx).Create(roster).Error; err != nil {
		return fmt.Errorf("failed to insert roster: %w", err)
	}
	return nil
}

func (r *RosterRepository) FindByID(ctx context.Context, id int64) (*gormModels.Roster, error) {
	var roster gormModels.Roster
	err := r.db.WithContext(ctx).First(&roster, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRoster
		}
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	return &roster, nil
}

// LatestByFlight returns the most recent snapshot for a flight.
func (r *RosterRepository) LatestByFlight(ctx context.Context, flightNo string) (*gormModels.Roster, error) {
	var roster gormModels.Roster
	err := r.db.WithContext(ctx).
		Where("flight_no = ?", flightNo).
		Order("created_at desc").
		First(&roster).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRoster
		}
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	return &roster, nil
}

// UpdateData rewrites a snapshot's payload after a manual seat edit. This
// is the only mutation a stored snapshot ever sees.
func (r *RosterRepository) UpdateData(ctx context.Context, id int64, dataJSON string) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Roster{}).
		Where("id = ?", id).
		Update("data_json", dataJSON)
	if res.Error != nil {
		return fmt.Errorf("failed to update roster: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoRoster
	}
	return nil
}

func (r *RosterRepository) CountByFlight(ctx context.Context, flightNo string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Roster{}).
		Where("flight_no = ?", flightNo).
		Count(&count).Error
	return count, err
}
