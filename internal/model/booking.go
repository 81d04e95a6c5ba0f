package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Customer holds the contact fields captured with a booking.
type Customer struct {
	FullName string `bson:"full_name" json:"full_name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
}

// Passenger is one named traveller. Every adult and child must be named;
// incomplete names block the booking.
type Passenger struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
}

// ExtraServiceSelection records one add-on chosen for a booking, with the
// unit price frozen at booking time.
type ExtraServiceSelection struct {
	Key            string `bson:"key" json:"key"`
	Selected       bool   `bson:"selected" json:"selected"`
	Quantity       int    `bson:"quantity" json:"quantity"`
	UnitPriceCents int64  `bson:"unit_price_cents" json:"unit_price_cents"`
}

// Booking is a persisted reservation. Pricing fields are computed server-side
// from canonical tour and coupon data and are immutable once persisted.
type Booking struct {
	ID                  primitive.ObjectID      `bson:"_id,omitempty" json:"id,omitempty"`
	Reference           string                  `bson:"reference" json:"reference"`
	Customer            Customer                `bson:"customer" json:"customer"`
	TourID              primitive.ObjectID      `bson:"tour_id" json:"tour_id"`
	TourTitle           string                  `bson:"tour_title" json:"tour_title"`
	Date                time.Time               `bson:"date" json:"date"`
	Adults              int                     `bson:"adults" json:"adults"`
	Children            int                     `bson:"children" json:"children"`
	Infants             int                     `bson:"infants" json:"infants"`
	Passengers          []Passenger             `bson:"passengers" json:"passengers"`
	ExtraServices       []ExtraServiceSelection `bson:"extra_services" json:"extra_services"`
	GuestSubtotalCents  int64                   `bson:"guest_subtotal_cents" json:"guest_subtotal_cents"`
	ExtrasTotalCents    int64                   `bson:"extras_total_cents" json:"extras_total_cents"`
	DiscountCode        string                  `bson:"discount_code,omitempty" json:"discount_code,omitempty"`
	DiscountAmountCents int64                   `bson:"discount_amount_cents" json:"discount_amount_cents"`
	TotalPriceCents     int64                   `bson:"total_price_cents" json:"total_price_cents"`
	PaymentMethod       string                  `bson:"payment_method" json:"payment_method"`
	Status              string                  `bson:"status" json:"status"`
	CreatedAt           time.Time               `bson:"created_at" json:"created_at"`
}

// BookingExtraRequest is one add-on selection as submitted by the client.
// Unit prices are looked up server-side; the client never sets them.
type BookingExtraRequest struct {
	Key      string `json:"key" binding:"required"`
	Selected bool   `json:"selected"`
	Quantity int    `json:"quantity"`
}

// CreateBookingRequest is the public booking submission payload. Client
// supplied totals, if any, are ignored and recomputed from canonical data.
type CreateBookingRequest struct {
	FullName      string                `json:"full_name" binding:"required"`
	Email         string                `json:"email" binding:"required,email"`
	Phone         string                `json:"phone" binding:"required"`
	TourID        string                `json:"tour_id" binding:"required"`
	Date          time.Time             `json:"date" binding:"required"`
	Adults        int                   `json:"adults" binding:"required,gte=1"`
	Children      int                   `json:"children" binding:"gte=0"`
	Infants       int                   `json:"infants" binding:"gte=0"`
	Passengers    []Passenger           `json:"passengers"`
	ExtraServices []BookingExtraRequest `json:"extra_services"`
	DiscountCode  string                `json:"discount_code"`
	PaymentMethod string                `json:"payment_method"`
}
