package seating

import (
	"reflect"
	"testing"
)

func agePtr(n int) *int       { return &n }
func groupPtr(n int64) *int64 { return &n }

func econ(id int64, age int) *Passenger {
	return &Passenger{ID: id, Age: agePtr(age), SeatType: ClassEconomy}
}

func TestAssignSeatsFamilyWithInfant(t *testing.T) {
	infant := &Passenger{ID: 1, Age: agePtr(2), SeatType: ClassEconomy, GroupID: groupPtr(1)}
	mother := &Passenger{ID: 2, Age: agePtr(28), SeatType: ClassEconomy, GroupID: groupPtr(1)}
	father := &Passenger{ID: 3, Age: agePtr(30), SeatType: ClassEconomy, GroupID: groupPtr(1)}

	AssignSeats("A320", []*Passenger{infant, mother, father})

	if infant.SeatNo != "" {
		t.Errorf("infant got seat %q, expected none", infant.SeatNo)
	}
	// The two adults form a pair; first economy pair on the A320 is 4A/4B.
	if mother.SeatNo != "4A" || father.SeatNo != "4B" {
		t.Errorf("expected adults on 4A/4B, got %q/%q", mother.SeatNo, father.SeatNo)
	}
}

func TestAssignSeatsPreSeatedNormalizedAndKept(t *testing.T) {
	held := &Passenger{ID: 1, Age: agePtr(40), SeatType: ClassEconomy, SeatNo: " 12c "}
	other := econ(2, 35)

	AssignSeats("A320", []*Passenger{held, other})

	if held.SeatNo != "12C" {
		t.Errorf("pre-seated passenger ended on %q, expected 12C", held.SeatNo)
	}
	if other.SeatNo == "12C" {
		t.Error("pre-held seat handed out a second time")
	}
}

func TestAssignSeatsNoDoubleOccupancy(t *testing.T) {
	var passengers []*Passenger
	for i := int64(1); i <= 40; i++ {
		p := econ(i, 30)
		if i <= 9 {
			gid := i / 3 // three groups of three
			p.GroupID = groupPtr(gid)
		}
		passengers = append(passengers, p)
	}

	AssignSeats("A320", passengers)

	seen := make(map[string]int64)
	for _, p := range passengers {
		if p.SeatNo == "" {
			t.Errorf("passenger %d left unseated in a half-empty cabin", p.ID)
			continue
		}
		if prev, ok := seen[p.SeatNo]; ok {
			t.Errorf("seat %s assigned to both %d and %d", p.SeatNo, prev, p.ID)
		}
		seen[p.SeatNo] = p.ID
	}
}

func TestAssignSeatsClassRespected(t *testing.T) {
	biz := &Passenger{ID: 1, Age: agePtr(50), SeatType: ClassBusiness}
	eco := econ(2, 25)

	AssignSeats("A320", []*Passenger{biz, eco})

	if biz.SeatNo != "1A" {
		t.Errorf("business passenger on %q, expected 1A", biz.SeatNo)
	}
	if eco.SeatNo != "4A" {
		t.Errorf("economy passenger on %q, expected 4A", eco.SeatNo)
	}
}

func TestAssignSeatsLargestGroupFirst(t *testing.T) {
	a1 := &Passenger{ID: 1, Age: agePtr(30), SeatType: ClassEconomy, GroupID: groupPtr(1)}
	a2 := &Passenger{ID: 2, Age: agePtr(31), SeatType: ClassEconomy, GroupID: groupPtr(1)}
	b1 := &Passenger{ID: 3, Age: agePtr(20), SeatType: ClassEconomy, GroupID: groupPtr(2)}
	b2 := &Passenger{ID: 4, Age: agePtr(21), SeatType: ClassEconomy, GroupID: groupPtr(2)}
	b3 := &Passenger{ID: 5, Age: agePtr(22), SeatType: ClassEconomy, GroupID: groupPtr(2)}

	AssignSeats("A320", []*Passenger{a1, a2, b1, b2, b3})

	// The triple picks before the pair even though it appears later.
	for i, p := range []*Passenger{b1, b2, b3} {
		want := []string{"4A", "4B", "4C"}[i]
		if p.SeatNo != want {
			t.Errorf("triple member %d on %q, expected %s", p.ID, p.SeatNo, want)
		}
	}
	if a1.SeatNo != "4D" || a2.SeatNo != "4E" {
		t.Errorf("pair on %q/%q, expected 4D/4E", a1.SeatNo, a2.SeatNo)
	}
}

func TestAssignSeatsBlockNeverSpansAisle(t *testing.T) {
	// Occupy 4A so the left side of row 4 holds only two free seats.
	blocker := &Passenger{ID: 1, Age: agePtr(40), SeatType: ClassEconomy, SeatNo: "4A"}
	g1 := &Passenger{ID: 2, Age: agePtr(30), SeatType: ClassEconomy, GroupID: groupPtr(7)}
	g2 := &Passenger{ID: 3, Age: agePtr(31), SeatType: ClassEconomy, GroupID: groupPtr(7)}
	g3 := &Passenger{ID: 4, Age: agePtr(32), SeatType: ClassEconomy, GroupID: groupPtr(7)}

	AssignSeats("A320", []*Passenger{blocker, g1, g2, g3})

	// 4B/4C plus 4D would cross the aisle: the triple must take the
	// right side of row 4 instead.
	if g1.SeatNo != "4D" || g2.SeatNo != "4E" || g3.SeatNo != "4F" {
		t.Errorf("triple on %q/%q/%q, expected 4D/4E/4F",
			g1.SeatNo, g2.SeatNo, g3.SeatNo)
	}
}

func TestAssignSeatsGroupFallsBackToIndividual(t *testing.T) {
	// Fill all economy seats except two that are not adjacent.
	free := map[string]bool{"4B": true, "9E": true}
	var passengers []*Passenger
	id := int64(100)
	for _, s := range BuildSeatMap("A320") {
		if s.Class != ClassEconomy || free[s.Number()] {
			continue
		}
		id++
		passengers = append(passengers, &Passenger{
			ID: id, Age: agePtr(30), SeatType: ClassEconomy, SeatNo: s.Number(),
		})
	}
	p1 := &Passenger{ID: 1, Age: agePtr(25), SeatType: ClassEconomy, GroupID: groupPtr(3)}
	p2 := &Passenger{ID: 2, Age: agePtr(26), SeatType: ClassEconomy, GroupID: groupPtr(3)}
	passengers = append(passengers, p1, p2)

	AssignSeats("A320", passengers)

	if p1.SeatNo != "4B" || p2.SeatNo != "9E" {
		t.Errorf("split group on %q/%q, expected 4B/9E", p1.SeatNo, p2.SeatNo)
	}
}

func TestAssignSeatsLargeGroupSeatedIndividually(t *testing.T) {
	var members []*Passenger
	for i := int64(1); i <= 4; i++ {
		p := econ(i, 30)
		p.GroupID = groupPtr(9)
		members = append(members, p)
	}

	AssignSeats("A320", members)

	want := []string{"4A", "4B", "4C", "4D"}
	for i, p := range members {
		if p.SeatNo != want[i] {
			t.Errorf("member %d on %q, expected %s", p.ID, p.SeatNo, want[i])
		}
	}
}

func TestAssignSeatsBusinessExhausted(t *testing.T) {
	var passengers []*Passenger
	for i := int64(1); i <= 20; i++ {
		passengers = append(passengers, &Passenger{
			ID: i, Age: agePtr(45), SeatType: ClassBusiness,
		})
	}

	AssignSeats("A320", passengers)

	// 18 business seats on the A320, so exactly two stay unseated and
	// none overflows into economy.
	if got := Unseated(passengers); got != 2 {
		t.Errorf("expected 2 unseated, got %d", got)
	}
	for _, p := range passengers {
		if p.SeatNo != "" && p.SeatNo[0] > '3' && len(p.SeatNo) == 2 {
			t.Errorf("business passenger %d spilled into economy seat %s", p.ID, p.SeatNo)
		}
	}
}

func TestAssignSeatsWideBodyBlockSkipsHeldSeat(t *testing.T) {
	blocker := &Passenger{ID: 1, Age: agePtr(40), SeatType: ClassBusiness, SeatNo: "1A"}
	g1 := &Passenger{ID: 2, Age: agePtr(30), SeatType: ClassBusiness, GroupID: groupPtr(5)}
	g2 := &Passenger{ID: 3, Age: agePtr(31), SeatType: ClassBusiness, GroupID: groupPtr(5)}
	g3 := &Passenger{ID: 4, Age: agePtr(32), SeatType: ClassBusiness, GroupID: groupPtr(5)}

	AssignSeats("B777", []*Passenger{blocker, g1, g2, g3})

	// Four-abreast left side of the B777 still holds a triple after 1A.
	if g1.SeatNo != "1B" || g2.SeatNo != "1C" || g3.SeatNo != "1D" {
		t.Errorf("triple on %q/%q/%q, expected 1B/1C/1D",
			g1.SeatNo, g2.SeatNo, g3.SeatNo)
	}
}

func TestAssignSeatsUnknownVehicleSeatsNobody(t *testing.T) {
	passengers := []*Passenger{econ(1, 30), econ(2, 31)}

	AssignSeats("CONCORDE", passengers)

	if got := Unseated(passengers); got != 2 {
		t.Errorf("expected everyone unseated, got %d unseated", got)
	}
}

func TestAssignSeatsDeterministic(t *testing.T) {
	build := func() []*Passenger {
		return []*Passenger{
			{ID: 1, Age: agePtr(2), SeatType: ClassEconomy, GroupID: groupPtr(1)},
			{ID: 2, Age: agePtr(28), SeatType: ClassEconomy, GroupID: groupPtr(1)},
			{ID: 3, Age: agePtr(55), SeatType: ClassBusiness},
			{ID: 4, Age: agePtr(19), SeatType: ClassEconomy, SeatNo: "10d"},
			{ID: 5, Age: agePtr(33), SeatType: ClassEconomy},
		}
	}

	first := AssignSeats("A321", build())
	second := AssignSeats("A321", build())

	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different assignments")
	}
}
