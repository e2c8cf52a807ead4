package seating

import "testing"

func TestBuildSeatRowsOccupantAttached(t *testing.T) {
	pax := &Passenger{ID: 7, Age: agePtr(41), SeatType: ClassBusiness, SeatNo: "1A"}

	rows := BuildSeatRows("A320", []*Passenger{pax})

	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.Row != i+1 {
			t.Errorf("row %d out of order: got row number %d", i, r.Row)
		}
		if len(r.Seats) != 6 {
			t.Errorf("row %d has %d seats, expected 6", r.Row, len(r.Seats))
		}
	}

	occupied := 0
	for _, r := range rows {
		for _, c := range r.Seats {
			if c.Occupant == nil {
				continue
			}
			occupied++
			if c.Number() != "1A" || c.Occupant.ID != 7 {
				t.Errorf("occupant %d attached to %s", c.Occupant.ID, c.Number())
			}
		}
	}
	if occupied != 1 {
		t.Errorf("expected exactly one occupied cell, got %d", occupied)
	}
}

func TestBuildSeatRowsDuplicateSeatLastWins(t *testing.T) {
	first := &Passenger{ID: 1, Age: agePtr(30), SeatType: ClassEconomy, SeatNo: "5B"}
	second := &Passenger{ID: 2, Age: agePtr(31), SeatType: ClassEconomy, SeatNo: "5B"}

	rows := BuildSeatRows("A320", []*Passenger{first, second})

	cell := rows[4].Seats[1]
	if cell.Number() != "5B" {
		t.Fatalf("expected cell 5B, got %s", cell.Number())
	}
	if cell.Occupant == nil || cell.Occupant.ID != 2 {
		t.Errorf("expected later passenger to win the duplicate seat")
	}
}

func TestBuildSeatRowsUnknownVehicle(t *testing.T) {
	if rows := BuildSeatRows("CONCORDE", nil); len(rows) != 0 {
		t.Errorf("expected no rows for unknown type, got %d", len(rows))
	}
}
