package repository

import (
	"context"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	// Create inserts a new coupon
	Create(ctx context.Context, coupon *model.Coupon) error

	// GetByCode retrieves a coupon by its (uppercase) code
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)

	// GetByID retrieves a coupon by its ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error)

	// List returns all coupons, newest first
	List(ctx context.Context) ([]*model.Coupon, error)

	// Update replaces the mutable fields of a coupon
	Update(ctx context.Context, coupon *model.Coupon) error

	// Delete removes a coupon
	Delete(ctx context.Context, id primitive.ObjectID) error

	// IncrementUsage atomically increments usage_count, but only while it is
	// still below usage_limit. Returns ErrUsageLimitReached otherwise.
	IncrementUsage(ctx context.Context, id primitive.ObjectID) error
}
