package seating

// SeatCell is one seat in the rendered cabin grid, with its occupant
// attached when somebody holds it.
type SeatCell struct {
	Seat
	Occupant *Passenger `json:"occupant,omitempty"`
}

// SeatRow is one cabin row of the grid, seats ordered by seat number.
type SeatRow struct {
	Row   int        `json:"row"`
	Seats []SeatCell `json:"seats"`
}

// BuildSeatRows projects the seat map and the current passenger list into
// a row-grouped grid for display, rows in ascending order. At most one
// occupant is attached per seat; if two passengers somehow claim the same
// seat the later one in the list wins, the projector never fails on bad
// input. Read-only: neither seats nor passengers are mutated.
func BuildSeatRows(vehicleType string, passengers []*Passenger) []SeatRow {
	seats := BuildSeatMap(vehicleType)

	occupants := make(map[string]*Passenger)
	for _, p := range passengers {
		if p.Seated() {
			occupants[p.SeatNo] = p
		}
	}

	var rows []SeatRow
	for _, s := range seats {
		if len(rows) == 0 || rows[len(rows)-1].Row != s.Row {
			rows = append(rows, SeatRow{Row: s.Row})
		}
		r := &rows[len(rows)-1]
		r.Seats = append(r.Seats, SeatCell{Seat: s, Occupant: occupants[s.Number()]})
	}
	return rows
}
