package gorm

import "time"

// Roster is one stored roster snapshot. DataJSON holds the serialized
// dtos.Roster payload (flight, crew, seated passengers) as of generation
// time. Snapshots are immutable apart from single-seat manual edits and
// are never overwritten by a later generation.
type Roster struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FlightNo  string    `gorm:"column:flight_no;index;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`
	DataJSON  string    `gorm:"column:data_json;type:text;not null"`
}

// TableName specifies the table name for GORM
func (Roster) TableName() string {
	return "rosters"
}
