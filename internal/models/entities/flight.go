package entities

// Flight is one scheduled flight. DateTime is stored as "2006-01-02 15:04"
// text, matching the operations feed. SharedFlightNo and SharedCompany are
// set only for codeshare flights.
type Flight struct {
	ID              int64   `db:"id" json:"id"`
	FlightNo        string  `db:"flight_no" json:"flight_no"`
	DateTime        string  `db:"date_time" json:"date_time"`
	DurationMinutes int     `db:"duration_minutes" json:"duration_minutes"`
	DistanceKm      int     `db:"distance_km" json:"distance_km"`
	Source          string  `db:"source" json:"source"`
	Destination     string  `db:"destination" json:"destination"`
	VehicleType     string  `db:"vehicle_type" json:"vehicle_type"`
	SharedFlightNo  *string `db:"shared_flight_no" json:"shared_flight_no,omitempty"`
	SharedCompany   *string `db:"shared_company" json:"shared_company,omitempty"`
}
