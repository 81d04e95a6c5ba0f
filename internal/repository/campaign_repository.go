package repository

import (
	"context"
	"time"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	// Create inserts a new campaign
	Create(ctx context.Context, campaign *model.Campaign) error

	// GetByID retrieves a campaign by its ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Campaign, error)

	// List returns all campaigns, newest first
	List(ctx context.Context) ([]*model.Campaign, error)

	// ListActive returns campaigns whose window is open at t
	ListActive(ctx context.Context, t time.Time) ([]*model.Campaign, error)

	// Update replaces the mutable fields of a campaign
	Update(ctx context.Context, campaign *model.Campaign) error

	// Delete removes a campaign
	Delete(ctx context.Context, id primitive.ObjectID) error
}
