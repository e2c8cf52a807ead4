package services

import (
	gormModels "flightops/frms/internal/models/gorm"
	"flightops/frms/internal/seating"
)

// toSeating converts live passenger rows into the in-memory records the
// seating core works on. nil seat numbers become the empty string the
// engine treats as "needs assignment".
func toSeating(rows []gormModels.Passenger) []*seating.Passenger {
	passengers := make([]*seating.Passenger, 0, len(rows))
	for _, row := range rows {
		p := &seating.Passenger{
			ID:          row.ID,
			FlightNo:    row.FlightNo,
			Name:        row.Name,
			Age:         row.Age,
			Nationality: row.Nationality,
			SeatType:    seating.SeatClass(row.SeatType),
			GroupID:     row.GroupID,
			ParentID:    row.ParentID,
		}
		if row.SeatNo != nil {
			p.SeatNo = *row.SeatNo
		}
		passengers = append(passengers, p)
	}
	return passengers
}

func countSeated(passengers []*seating.Passenger) int {
	n := 0
	for _, p := range passengers {
		if p.Seated() {
			n++
		}
	}
	return n
}
