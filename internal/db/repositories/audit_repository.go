package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"flightops/frms/internal/constants"
	"flightops/frms/internal/models/entities"
)

// auditRetention is how long audit entries are kept before the startup
// prune removes them.
const auditRetention = 180 * 24 * time.Hour

type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db}
}

func (r *AuditRepository) Insert(ctx context.Context, userEmail *string, level, action, details string) error {
	_, err := r.db.ExecContext(ctx, constants.InsertAuditLog,
		time.Now().UTC(), userEmail, level, action, details)
	return err
}

// List returns the newest entries first, optionally filtered by level.
func (r *AuditRepository) List(ctx context.Context, level string, limit int) ([]entities.AuditLog, error) {
	logs := []entities.AuditLog{}
	var err error
	if level == "" {
		err = r.db.SelectContext(ctx, &logs, constants.ListAuditLogs, limit)
	} else {
		err = r.db.SelectContext(ctx, &logs, constants.ListAuditLogsByLevel, level, limit)
	}
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Prune deletes entries past the retention window.
func (r *AuditRepository) Prune(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-auditRetention)
	_, err := r.db.ExecContext(ctx, constants.PruneAuditLogs, cutoff)
	return err
}
