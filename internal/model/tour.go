package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour represents a bookable tour.
type Tour struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string              `bson:"title" json:"title"`
	Slug            string              `bson:"slug" json:"slug"`
	BasePriceCents  int64               `bson:"base_price_cents" json:"base_price_cents"`
	DiscountPercent int                 `bson:"discount_percent" json:"discount_percent"`
	IsCampaign      bool                `bson:"is_campaign" json:"is_campaign"`
	Location        string              `bson:"location" json:"location"`
	Category        string              `bson:"category" json:"category"`
	DurationDays    int                 `bson:"duration_days" json:"duration_days"`
	BookingCount    int64               `bson:"booking_count" json:"booking_count"`
	ExtraServices   []ExtraServiceOffer `bson:"extra_services" json:"extra_services"`
	Active          bool                `bson:"active" json:"active"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

// ExtraServiceOffer is an optional paid add-on a tour offers (child seat,
// meet-and-greet, ...). PerUnit services are priced by quantity.
type ExtraServiceOffer struct {
	Key        string `bson:"key" json:"key"`
	Name       string `bson:"name" json:"name"`
	PriceCents int64  `bson:"price_cents" json:"price_cents"`
	PerUnit    bool   `bson:"per_unit" json:"per_unit"`
}

// CreateTourRequest is the admin payload for creating a tour.
type CreateTourRequest struct {
	Title          string              `json:"title" binding:"required"`
	Slug           string              `json:"slug"`
	BasePriceCents int64               `json:"base_price_cents" binding:"required,gt=0"`
	Location       string              `json:"location" binding:"required"`
	Category       string              `json:"category" binding:"required"`
	DurationDays   int                 `json:"duration_days"`
	ExtraServices  []ExtraServiceOffer `json:"extra_services"`
	Active         bool                `json:"active"`
}

// UpdateTourRequest carries optional fields for a partial tour update.
type UpdateTourRequest struct {
	Title          *string              `json:"title,omitempty"`
	BasePriceCents *int64               `json:"base_price_cents,omitempty"`
	Location       *string              `json:"location,omitempty"`
	Category       *string              `json:"category,omitempty"`
	DurationDays   *int                 `json:"duration_days,omitempty"`
	ExtraServices  *[]ExtraServiceOffer `json:"extra_services,omitempty"`
	Active         *bool                `json:"active,omitempty"`
}
