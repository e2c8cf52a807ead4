package constants

// SQL for the sqlx repositories. Flight search is assembled dynamically
// in the repository because every filter is optional.
const (
	GetFlightByNo = `
	SELECT * FROM flights WHERE flight_no = $1
	`

	ListFlights = `
	SELECT * FROM flights ORDER BY date_time ASC LIMIT $1
	`

	GetPilotsForFlight = `
	SELECT * FROM pilots
	WHERE vehicle_type = $1 AND max_distance_km >= $2
	ORDER BY id ASC
	`

	ListAttendants = `
	SELECT * FROM attendants ORDER BY id ASC
	`

	ListPilots = `
	SELECT * FROM pilots ORDER BY id ASC
	`

	InsertAuditLog = `
	INSERT INTO audit_logs (timestamp, user_email, level, action, details)
	VALUES ($1, $2, $3, $4, $5)
	`

	ListAuditLogs = `
	SELECT * FROM audit_logs ORDER BY timestamp DESC LIMIT $1
	`

	ListAuditLogsByLevel = `
	SELECT * FROM audit_logs WHERE level = $1 ORDER BY timestamp DESC LIMIT $2
	`

	PruneAuditLogs = `
	DELETE FROM audit_logs WHERE timestamp < $1
	`
)
