package seating

import (
	"sort"
	"strings"
)

// AssignSeats fills in SeatNo for every passenger it can seat and returns
// the same slice. Passengers that already hold a seat keep it untouched
// (their seat number is normalized to trimmed upper-case), infants are
// never seated, and groups of two or three are placed on adjacent blocks
// before individuals pick from what is left. A passenger left without a
// seat signals a full cabin for their class, not an error.
//
// Given the same input, including slice order, the result is identical on
// every call.
func AssignSeats(vehicleType string, passengers []*Passenger) []*Passenger {
	seats := BuildSeatMap(vehicleType)

	// Pre-seated passengers own their seat for the rest of the run.
	used := make(map[string]bool)
	for _, p := range passengers {
		p.SeatNo = strings.ToUpper(strings.TrimSpace(p.SeatNo))
		if p.SeatNo != "" {
			used[p.SeatNo] = true
		}
	}

	assignGroups(seats, passengers, used)
	assignIndividuals(seats, passengers, used)
	return passengers
}

// Unseated counts passengers with no seat who are not infants. Callers
// report this as the cabin-full count after an assignment run.
func Unseated(passengers []*Passenger) int {
	n := 0
	for _, p := range passengers {
		if !p.Seated() && !p.Infant() {
			n++
		}
	}
	return n
}

type group struct {
	id      int64
	first   int // index of first appearance, stable tie-break
	members []*Passenger
}

// assignGroups seats booking groups onto adjacent blocks, largest group
// first: big parties are the hardest to keep together, so they pick
// before smaller ones can fragment the remaining rows. Groups of one and
// of four or more carry no block rule and fall through to individual
// assignment, as does any group that finds no block in its class.
func assignGroups(seats []Seat, passengers []*Passenger, used map[string]bool) {
	byID := make(map[int64]*group)
	var groups []*group
	for i, p := range passengers {
		if p.Seated() || p.Infant() || p.GroupID == nil {
			continue
		}
		g := byID[*p.GroupID]
		if g == nil {
			g = &group{id: *p.GroupID, first: i}
			byID[*p.GroupID] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, p)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].members) != len(groups[j].members) {
			return len(groups[i].members) > len(groups[j].members)
		}
		return groups[i].first < groups[j].first
	})

	for _, g := range groups {
		n := len(g.members)
		if n != 2 && n != 3 {
			continue
		}
		// The whole group targets the class of its first member.
		block := findBlock(seats, used, n, g.members[0].RequestedClass())
		if block == nil {
			continue
		}
		for i, p := range g.members {
			p.SeatNo = block[i].Number()
			used[p.SeatNo] = true
		}
	}
}

// findBlock returns the first run of n adjacent free seats of the wanted
// class within a single row side, scanning rows in ascending order and
// the left side before the right. Blocks never span the aisle.
func findBlock(seats []Seat, used map[string]bool, n int, class SeatClass) []Seat {
	type sideKey struct {
		row  int
		side Side
	}

	// The seat map is row-major with left columns first, so first
	// appearance order of the keys is already the scan order.
	bySide := make(map[sideKey][]Seat)
	var order []sideKey
	for _, s := range seats {
		k := sideKey{s.Row, s.Side}
		if _, ok := bySide[k]; !ok {
			order = append(order, k)
		}
		bySide[k] = append(bySide[k], s)
	}

	for _, k := range order {
		side := bySide[k]
		for start := 0; start+n <= len(side); start++ {
			fits := true
			for _, s := range side[start : start+n] {
				if s.Class != class || used[s.Number()] {
					fits = false
					break
				}
			}
			if fits {
				return side[start : start+n]
			}
		}
	}
	return nil
}

// assignIndividuals hands every remaining passenger the first free seat
// of their class in seat-map order. An exhausted class pool leaves the
// passenger unseated.
func assignIndividuals(seats []Seat, passengers []*Passenger, used map[string]bool) {
	for _, p := range passengers {
		if p.Seated() || p.Infant() {
			continue
		}
		class := p.RequestedClass()
		for _, s := range seats {
			if s.Class != class || used[s.Number()] {
				continue
			}
			p.SeatNo = s.Number()
			used[p.SeatNo] = true
			break
		}
	}
}
