package service

import (
	"context"
	"log"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/repository"

	"github.com/google/uuid"
)

// AuditService records admin mutations for the back-office audit trail.
// Recording is best-effort: a failed audit write is logged, not surfaced,
// so it never blocks the mutation it describes.
type AuditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record appends one audit entry.
func (s *AuditService) Record(ctx context.Context, actor, action, entity, entityID, detail string) {
	entry := &model.AuditLog{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Printf("audit write failed (%s %s %s): %v", actor, action, entity, err)
	}
}

// List returns the most recent audit entries.
func (s *AuditService) List(ctx context.Context, limit int64) ([]*model.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, limit)
}
