package entities

// Pilot seniority levels used by the crew pick.
const (
	SenioritySenior  = "senior"
	SeniorityJunior  = "junior"
	SeniorityTrainee = "trainee"
)

type Pilot struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Nationality   string `db:"nationality" json:"nationality"`
	Languages     string `db:"languages" json:"languages"`
	VehicleType   string `db:"vehicle_type" json:"vehicle_type"`
	MaxDistanceKm int    `db:"max_distance_km" json:"max_distance_km"`
	Seniority     string `db:"seniority" json:"seniority"`
}

// Attendant is one cabin crew member. VehicleTypes is a comma separated
// list of aircraft the attendant is certified for.
type Attendant struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Nationality   string `db:"nationality" json:"nationality"`
	Languages     string `db:"languages" json:"languages"`
	AttendantType string `db:"attendant_type" json:"attendant_type"`
	VehicleTypes  string `db:"vehicle_types" json:"vehicle_types"`
}
