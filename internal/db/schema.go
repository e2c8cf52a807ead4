package db

import "github.com/jmoiron/sqlx"

// schemaDDL creates the tables owned by the sqlx repositories. The user,
// passenger and roster tables are migrated by GORM in orm.go.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS flights (
		id SERIAL PRIMARY KEY,
		flight_no TEXT UNIQUE NOT NULL,
		date_time TEXT NOT NULL,
		duration_minutes INTEGER,
		distance_km INTEGER,
		source TEXT,
		destination TEXT,
		vehicle_type TEXT,
		shared_flight_no TEXT,
		shared_company TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS pilots (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		nationality TEXT,
		languages TEXT,
		vehicle_type TEXT,
		max_distance_km INTEGER,
		seniority TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS attendants (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		nationality TEXT,
		languages TEXT,
		attendant_type TEXT,
		vehicle_types TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id SERIAL PRIMARY KEY,
		timestamp TIMESTAMPTZ NOT NULL,
		user_email TEXT,
		level TEXT NOT NULL,
		action TEXT NOT NULL,
		details TEXT
	)`,
}

// EnsureSchema creates the sqlx-managed tables when they do not exist.
func EnsureSchema(db *sqlx.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
