package seating

import (
	"errors"
	"strings"
)

// Rejection reasons for a manual seat change, in the order the checks
// run. The first failing check wins so the caller can show the most
// specific message.
var (
	ErrInvalidSeat       = errors.New("invalid seat")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrInfantSeating     = errors.New("infant seating forbidden")
	ErrClassMismatch     = errors.New("class mismatch")
	ErrSeatOccupied      = errors.New("seat occupied")
)

// SeatChange records a successful manual reassignment for auditing.
type SeatChange struct {
	PassengerID int64  `json:"passenger_id"`
	PrevSeat    string `json:"prev_seat,omitempty"`
	NewSeat     string `json:"new_seat"`
}

// ApplyManualSeat validates and applies one manual seat reassignment
// against the passengers of a roster snapshot. The new seat number is
// normalized (trimmed, upper-cased) before any check. On success the
// target passenger's seat is updated in place and the prior seat is
// returned; on rejection nothing is mutated and one of the sentinel
// errors above explains why.
func ApplyManualSeat(vehicleType string, passengers []*Passenger, passengerID int64, newSeat string) (*SeatChange, error) {
	newSeat = strings.ToUpper(strings.TrimSpace(newSeat))

	var target *Seat
	for _, s := range BuildSeatMap(vehicleType) {
		if s.Number() == newSeat {
			seat := s
			target = &seat
			break
		}
	}
	if target == nil {
		return nil, ErrInvalidSeat
	}

	var pax *Passenger
	for _, p := range passengers {
		if p.ID == passengerID {
			pax = p
			break
		}
	}
	if pax == nil {
		return nil, ErrPassengerNotFound
	}

	if pax.Infant() {
		return nil, ErrInfantSeating
	}

	if target.Class != pax.RequestedClass() {
		return nil, ErrClassMismatch
	}

	for _, p := range passengers {
		if p.ID != passengerID && p.SeatNo == newSeat {
			return nil, ErrSeatOccupied
		}
	}

	prev := pax.SeatNo
	pax.SeatNo = newSeat
	return &SeatChange{PassengerID: passengerID, PrevSeat: prev, NewSeat: newSeat}, nil
}
