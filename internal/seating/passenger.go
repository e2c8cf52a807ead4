package seating

// Passenger is the in-memory passenger record the seating core operates
// on. It is the shape embedded in roster snapshots; the persistence layer
// converts its own rows into this type before calling the engine.
//
// SeatNo empty means "needs assignment". Age is a pointer because age is
// optional on a booking; GroupID links passengers booked together and
// ParentID marks a dependent of another passenger (informational only).
type Passenger struct {
	ID          int64     `json:"id"`
	FlightNo    string    `json:"flight_no"`
	Name        string    `json:"name"`
	Age         *int      `json:"age"`
	Nationality string    `json:"nationality,omitempty"`
	SeatType    SeatClass `json:"seat_type"`
	SeatNo      string    `json:"seat_no,omitempty"`
	GroupID     *int64    `json:"group_id,omitempty"`
	ParentID    *int64    `json:"parent_id,omitempty"`
}

// Infant reports whether the passenger travels on a lap and must never be
// assigned a seat, automatically or manually.
func (p *Passenger) Infant() bool {
	return p.Age != nil && *p.Age <= 2
}

// RequestedClass returns the booked cabin class, defaulting to economy
// when the booking carries no class at all.
func (p *Passenger) RequestedClass() SeatClass {
	if p.SeatType == ClassBusiness {
		return ClassBusiness
	}
	return ClassEconomy
}

// Seated reports whether the passenger already holds a seat.
func (p *Passenger) Seated() bool {
	return p.SeatNo != ""
}
