package repository

import (
	"context"

	"tour-platform/internal/model"
)

// LoyaltyRepository defines the interface for loyalty account operations
type LoyaltyRepository interface {
	// Accrue atomically adds points to the account for email, creating the
	// account on first accrual
	Accrue(ctx context.Context, email string, points int64) (*model.LoyaltyAccount, error)

	// Get returns the loyalty account for email, or nil when none exists
	Get(ctx context.Context, email string) (*model.LoyaltyAccount, error)
}
