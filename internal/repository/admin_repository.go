package repository

import (
	"context"

	"tour-platform/internal/model"
)

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	// GetByEmail retrieves an admin account by email
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)

	// Create inserts a new admin account
	Create(ctx context.Context, admin *model.AdminUser) error
}
