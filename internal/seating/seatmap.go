package seating

import "fmt"

// SeatClass is the cabin class of a seat or the class a passenger booked.
type SeatClass string

const (
	ClassBusiness SeatClass = "business"
	ClassEconomy  SeatClass = "economy"
)

// Side splits a cabin row at the aisle. The first half of the column
// letters is the left side, the rest the right side.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Layout describes the cabin configuration of one aircraft type.
// Rows 1..BusinessRows are business class, everything after is economy.
type Layout struct {
	Rows         int
	BusinessRows int
	Columns      string
}

// layouts is the static aircraft configuration table. Narrow-bodies use
// the six-abreast ABCDEF cabin, the B777 is ten rows longer and eight
// abreast.
var layouts = map[string]Layout{
	"A320": {Rows: 20, BusinessRows: 3, Columns: "ABCDEF"},
	"B737": {Rows: 22, BusinessRows: 4, Columns: "ABCDEF"},
	"A321": {Rows: 24, BusinessRows: 5, Columns: "ABCDEF"},
	"B777": {Rows: 30, BusinessRows: 6, Columns: "ABCDEFGH"},
}

// LayoutFor returns the layout for a vehicle type. Unknown types return
// ok=false; callers must treat that as an empty cabin rather than guess a
// default, since seating a wide-body load onto an assumed narrow-body
// layout would silently mis-seat passengers.
func LayoutFor(vehicleType string) (Layout, bool) {
	l, ok := layouts[vehicleType]
	return l, ok
}

// Seat is one physical seat. Row and Column are parsed out once at build
// time so block matching never re-parses seat number strings.
type Seat struct {
	Row    int       `json:"row"`
	Column byte      `json:"column"`
	Class  SeatClass `json:"seat_type"`
	Side   Side      `json:"side"`
}

// Number renders the seat identifier, e.g. "14C".
func (s Seat) Number() string {
	return fmt.Sprintf("%d%c", s.Row, s.Column)
}

// BuildSeatMap generates the full seat inventory for a vehicle type in
// row-major order (row 1 all columns, then row 2, ...). The map is
// recomputed on every call and never cached; it is the single source of
// truth for the assigner, the grid projector and the manual seat editor.
// An unknown vehicle type yields an empty inventory.
func BuildSeatMap(vehicleType string) []Seat {
	layout, ok := LayoutFor(vehicleType)
	if !ok {
		return nil
	}

	half := len(layout.Columns) / 2
	seats := make([]Seat, 0, layout.Rows*len(layout.Columns))
	for row := 1; row <= layout.Rows; row++ {
		class := ClassEconomy
		if row <= layout.BusinessRows {
			class = ClassBusiness
		}
		for i := 0; i < len(layout.Columns); i++ {
			side := SideLeft
			if i >= half {
				side = SideRight
			}
			seats = append(seats, Seat{
				Row:    row,
				Column: layout.Columns[i],
				Class:  class,
				Side:   side,
			})
		}
	}
	return seats
}
