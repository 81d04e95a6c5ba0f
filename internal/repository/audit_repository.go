package repository

import (
	"context"

	"tour-platform/internal/model"
)

// AuditRepository defines the interface for the admin audit trail
type AuditRepository interface {
	// Insert appends one audit entry
	Insert(ctx context.Context, entry *model.AuditLog) error

	// List returns the most recent entries, newest first
	List(ctx context.Context, limit int64) ([]*model.AuditLog, error)
}
