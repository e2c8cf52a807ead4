package dtos

import (
	"time"

	"flightops/frms/internal/models/entities"
	"flightops/frms/internal/seating"
)

// Roster is the snapshot payload stored (and exported) for one roster
// generation: the flight, the picked crew and the full passenger list
// with seat assignments as of generation time.
type Roster struct {
	Flight     entities.Flight      `json:"flight"`
	Pilots     []entities.Pilot     `json:"pilots"`
	Cabin      []entities.Attendant `json:"cabin"`
	Passengers []*seating.Passenger `json:"passengers"`
}

// RosterView is the roster as served to clients: the snapshot plus its
// identity, the row-grouped cabin grid and the count of passengers the
// engine could not seat.
type RosterView struct {
	RosterID  int64             `json:"roster_id"`
	CreatedAt time.Time         `json:"created_at"`
	Roster    Roster            `json:"roster"`
	SeatRows  []seating.SeatRow `json:"seat_rows"`
	Unseated  int               `json:"unseated"`
}

// SeatChangeResult reports a manual seat edit back to the caller. The
// prior seat is included for auditing. MirrorError carries the error text
// when the best-effort write to the live passenger row failed after the
// snapshot was already updated.
type SeatChangeResult struct {
	RosterID    int64  `json:"roster_id"`
	PassengerID int64  `json:"passenger_id"`
	PrevSeat    string `json:"prev_seat,omitempty"`
	NewSeat     string `json:"new_seat"`
	MirrorError string `json:"mirror_error,omitempty"`
}
