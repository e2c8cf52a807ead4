package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "flightops/frms/internal/models/gorm"
)

type PassengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// ListByFlight returns the live passenger rows for a flight in id order,
// the processing order the assignment engine depends on.
func (r *PassengerRepository) ListByFlight(ctx context.Context, flightNo string) ([]gormModels.Passenger, error) {
	var passengers []gormModels.Passenger
	err := r.db.WithContext(ctx).
		Where("flight_no = ?", flightNo).
		Order("id asc").
		Find(&passengers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list passengers: %w", err)
	}
	return passengers, nil
}

func (r *PassengerRepository) Create(ctx context.Context, p *gormModels.Passenger) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create passenger: %w", err)
	}
	return nil
}

// UpdateSeat mirrors a seat assignment onto the live passenger row. Used
// as the secondary write after a manual seat edit updates a snapshot.
func (r *PassengerRepository) UpdateSeat(ctx context.Context, passengerID int64, seatNo string) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Passenger{}).
		Where("id = ?", passengerID).
		Update("seat_no", seatNo)
	if res.Error != nil {
		return fmt.Errorf("failed to update seat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("passenger not found")
	}
	return nil
}

func (r *PassengerRepository) Delete(ctx context.Context, passengerID int64) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Passenger{}, passengerID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete passenger: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("passenger not found")
	}
	return nil
}
