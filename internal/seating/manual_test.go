package seating

import (
	"errors"
	"testing"
)

func manualFixture() []*Passenger {
	return []*Passenger{
		{ID: 1, Age: agePtr(45), SeatType: ClassBusiness, SeatNo: "1A"},
		{ID: 2, Age: agePtr(30), SeatType: ClassEconomy, SeatNo: "4A"},
		{ID: 3, Age: agePtr(1), SeatType: ClassEconomy},
		{ID: 4, Age: agePtr(28), SeatType: ClassEconomy},
	}
}

func TestApplyManualSeatSuccess(t *testing.T) {
	passengers := manualFixture()

	change, err := ApplyManualSeat("A320", passengers, 2, " 5c ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if change.PrevSeat != "4A" || change.NewSeat != "5C" {
		t.Errorf("change = %+v, expected 4A -> 5C", change)
	}
	if passengers[1].SeatNo != "5C" {
		t.Errorf("passenger seat not updated: %q", passengers[1].SeatNo)
	}
}

func TestApplyManualSeatFirstAssignment(t *testing.T) {
	passengers := manualFixture()

	change, err := ApplyManualSeat("A320", passengers, 4, "6D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if change.PrevSeat != "" {
		t.Errorf("expected empty prior seat, got %q", change.PrevSeat)
	}
}

func TestApplyManualSeatRejections(t *testing.T) {
	tests := []struct {
		name        string
		passengerID int64
		seat        string
		want        error
	}{
		{"unknown seat", 2, "99Z", ErrInvalidSeat},
		{"seat off the row", 2, "4G", ErrInvalidSeat},
		{"invalid seat beats unknown passenger", 999, "99Z", ErrInvalidSeat},
		{"unknown passenger", 999, "5C", ErrPassengerNotFound},
		{"infant", 3, "5C", ErrInfantSeating},
		{"economy passenger into business", 2, "1B", ErrClassMismatch},
		{"business passenger into economy", 1, "5C", ErrClassMismatch},
		{"seat held by someone else", 4, "4A", ErrSeatOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passengers := manualFixture()
			_, err := ApplyManualSeat("A320", passengers, tt.passengerID, tt.seat)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			for i, p := range manualFixture() {
				if passengers[i].SeatNo != p.SeatNo {
					t.Errorf("rejection mutated passenger %d seat to %q", passengers[i].ID, passengers[i].SeatNo)
				}
			}
		})
	}
}

func TestApplyManualSeatReassignToOwnSeat(t *testing.T) {
	passengers := manualFixture()

	change, err := ApplyManualSeat("A320", passengers, 2, "4A")
	if err != nil {
		t.Fatalf("moving onto own seat rejected: %v", err)
	}
	if change.PrevSeat != "4A" || change.NewSeat != "4A" {
		t.Errorf("change = %+v", change)
	}
}
