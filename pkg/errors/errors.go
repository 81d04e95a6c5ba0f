package errors

import (
	"errors"
	"fmt"
)

// Domain errors for the tour platform
var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyExists = errors.New("coupon already exists")
	ErrCouponExpired       = errors.New("coupon_expired")
	ErrCouponInactive      = errors.New("coupon_inactive")
	ErrUsageLimitReached   = errors.New("usage_limit_reached")
	ErrMinimumNotMet       = errors.New("minimum_purchase_not_met")

	ErrTourNotFound     = errors.New("tour not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrBookingNotFound  = errors.New("booking not found")

	ErrBookingsDisabled   = errors.New("bookings are currently disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
