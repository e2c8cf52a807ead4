package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"flightops/frms/internal/constants"
	"flightops/frms/internal/models/entities"
)

type FlightRepository struct {
	db *sqlx.DB
}

func NewFlightRepository(db *sqlx.DB) *FlightRepository {
	return &FlightRepository{db}
}

func (r *FlightRepository) FindByFlightNo(ctx context.Context, flightNo string) (*entities.Flight, error) {
	var flight entities.Flight
	if err := r.db.GetContext(ctx, &flight, constants.GetFlightByNo, flightNo); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *FlightRepository) List(ctx context.Context, limit int) ([]entities.Flight, error) {
	flights := []entities.Flight{}
	if err := r.db.SelectContext(ctx, &flights, constants.ListFlights, limit); err != nil {
		return nil, err
	}
	return flights, nil
}

// Search filters flights by any combination of flight number, date
// prefix, source and destination. The WHERE clause is assembled from the
// non-empty filters, all matched as substrings the way the search form
// expects.
func (r *FlightRepository) Search(ctx context.Context, flightNo, date, source, destination string) ([]entities.Flight, error) {
	query := `SELECT * FROM flights WHERE 1=1`
	var args []interface{}

	add := func(clause, value string) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if flightNo != "" {
		add(" AND flight_no LIKE $%d", "%"+strings.ToUpper(flightNo)+"%")
	}
	if date != "" {
		add(" AND date_time LIKE $%d", date+"%")
	}
	if source != "" {
		add(" AND source LIKE $%d", "%"+source+"%")
	}
	if destination != "" {
		add(" AND destination LIKE $%d", "%"+destination+"%")
	}
	query += " ORDER BY date_time ASC"

	flights := []entities.Flight{}
	if err := r.db.SelectContext(ctx, &flights, query, args...); err != nil {
		return nil, err
	}
	return flights, nil
}
