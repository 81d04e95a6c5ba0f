package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign condition types. The condition type names the tour or clock
// attribute the target is matched against.
const (
	ConditionCity         = "city"
	ConditionTourType     = "tourType"
	ConditionDayOfWeek    = "dayOfWeek"
	ConditionDate         = "date"
	ConditionBookingCount = "bookingCount"
)

// Campaign is an admin-defined rule that discounts matching tours while its
// window is open.
type Campaign struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	ConditionType string             `bson:"condition_type" json:"condition_type"`
	Target        string             `bson:"target" json:"target"`
	DiscountRate  int                `bson:"discount_rate" json:"discount_rate"`
	StartDate     time.Time          `bson:"start_date" json:"start_date"`
	EndDate       time.Time          `bson:"end_date" json:"end_date"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// InWindow reports whether the campaign window is open at t.
func (c *Campaign) InWindow(t time.Time) bool {
	return c.Active && !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// CreateCampaignRequest is the admin payload for creating a campaign.
type CreateCampaignRequest struct {
	Name          string    `json:"name" binding:"required"`
	ConditionType string    `json:"condition_type" binding:"required,oneof=city tourType dayOfWeek date bookingCount"`
	Target        string    `json:"target" binding:"required"`
	DiscountRate  int       `json:"discount_rate" binding:"required,gt=0,lte=100"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	Active        bool      `json:"active"`
}

// UpdateCampaignRequest carries optional fields for a partial campaign update.
type UpdateCampaignRequest struct {
	Name          *string    `json:"name,omitempty"`
	ConditionType *string    `json:"condition_type,omitempty" binding:"omitempty,oneof=city tourType dayOfWeek date bookingCount"`
	Target        *string    `json:"target,omitempty"`
	DiscountRate  *int       `json:"discount_rate,omitempty" binding:"omitempty,gt=0,lte=100"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Active        *bool      `json:"active,omitempty"`
}

// ApplyReport summarizes one campaign application run.
type ApplyReport struct {
	ToursUpdated int `json:"toursUpdated"`
	ToursFailed  int `json:"toursFailed"`
}
