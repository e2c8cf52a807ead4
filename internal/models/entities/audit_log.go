package entities

import "time"

// AuditLog is one persisted audit trail entry. Entries older than the
// retention window are pruned on startup.
type AuditLog struct {
	ID        int64     `db:"id" json:"id"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	UserEmail *string   `db:"user_email" json:"user_email,omitempty"`
	Level     string    `db:"level" json:"level"`
	Action    string    `db:"action" json:"action"`
	Details   string    `db:"details" json:"details"`
}
