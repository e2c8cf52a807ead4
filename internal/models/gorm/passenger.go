package gorm

import "time"

// Passenger is the live passenger row for a flight. SeatNo is nil until
// the passenger is seated; roster generation writes assignments into the
// snapshot and manual seat edits mirror the change back onto this row.
type Passenger struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FlightNo    string    `gorm:"column:flight_no;index;not null"`
	Name        string    `gorm:"column:name;not null"`
	Age         *int      `gorm:"column:age"`
	Nationality string    `gorm:"column:nationality"`
	SeatType    string    `gorm:"column:seat_type"`
	SeatNo      *string   `gorm:"column:seat_no"`
	GroupID     *int64    `gorm:"column:group_id"`
	ParentID    *int64    `gorm:"column:parent_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Passenger) TableName() string {
	return "passengers"
}
