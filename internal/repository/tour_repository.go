package repository

import (
	"context"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourRepository defines the interface for tour data operations
type TourRepository interface {
	// Create inserts a new tour
	Create(ctx context.Context, tour *model.Tour) error

	// GetByID retrieves a tour by its ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tour, error)

	// List returns tours; activeOnly limits to bookable tours
	List(ctx context.Context, activeOnly bool) ([]*model.Tour, error)

	// Update replaces the mutable fields of a tour
	Update(ctx context.Context, tour *model.Tour) error

	// Delete removes a tour
	Delete(ctx context.Context, id primitive.ObjectID) error

	// SetCampaignDiscount atomically sets discount_percent and is_campaign in
	// one update. Returns true when the tour document actually changed.
	SetCampaignDiscount(ctx context.Context, id primitive.ObjectID, percent int, isCampaign bool) (bool, error)

	// IncrementBookingCount bumps the tour's booking counter
	IncrementBookingCount(ctx context.Context, id primitive.ObjectID) error
}
