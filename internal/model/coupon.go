package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discount types for coupons.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon represents a redeemable discount code. Codes are stored uppercase;
// lookups uppercase the input so matching is case-insensitive.
type Coupon struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code             string             `bson:"code" json:"code"`
	Description      string             `bson:"description" json:"description"`
	DiscountType     string             `bson:"discount_type" json:"discount_type"`
	DiscountValue    int64              `bson:"discount_value" json:"discount_value"` // percent (0-100) or cents
	MaxDiscountCents int64              `bson:"max_discount_cents" json:"max_discount_cents"`
	MinPurchaseCents int64              `bson:"min_purchase_cents" json:"min_purchase_cents"`
	UsageLimit       int64              `bson:"usage_limit" json:"usage_limit"`
	UsageCount       int64              `bson:"usage_count" json:"usage_count"`
	ExpiresAt        time.Time          `bson:"expires_at" json:"expires_at"`
	Active           bool               `bson:"active" json:"active"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateCouponRequest is the admin payload for creating a coupon.
type CreateCouponRequest struct {
	Code             string    `json:"code" binding:"required"`
	Description      string    `json:"description"`
	DiscountType     string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue    int64     `json:"discount_value" binding:"required,gt=0"`
	MaxDiscountCents int64     `json:"max_discount_cents"`
	MinPurchaseCents int64     `json:"min_purchase_cents"`
	UsageLimit       int64     `json:"usage_limit" binding:"required,gt=0"`
	ExpiresAt        time.Time `json:"expires_at" binding:"required"`
	Active           bool      `json:"active"`
}

// UpdateCouponRequest carries optional fields for a partial coupon update.
// The code itself is immutable; delete and recreate to rename a coupon.
type UpdateCouponRequest struct {
	Description      *string    `json:"description,omitempty"`
	DiscountType     *string    `json:"discount_type,omitempty" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue    *int64     `json:"discount_value,omitempty" binding:"omitempty,gt=0"`
	MaxDiscountCents *int64     `json:"max_discount_cents,omitempty" binding:"omitempty,gte=0"`
	MinPurchaseCents *int64     `json:"min_purchase_cents,omitempty" binding:"omitempty,gte=0"`
	UsageLimit       *int64     `json:"usage_limit,omitempty" binding:"omitempty,gt=0"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	Active           *bool      `json:"active,omitempty"`
}

// ValidateCouponRequest is the public dry-run validation payload.
type ValidateCouponRequest struct {
	Code          string `json:"code" binding:"required"`
	BookingAmount int64  `json:"bookingAmount" binding:"required,gt=0"`
	TourID        string `json:"tourId"`
}

// CouponValidation is the outcome of a dry-run coupon check.
type CouponValidation struct {
	Valid          bool   `json:"valid"`
	DiscountAmount int64  `json:"discountAmount"`
	Reason         string `json:"reason,omitempty"`
}
