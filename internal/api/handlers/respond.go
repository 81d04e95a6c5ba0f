package handlers

import (
	"errors"
	"net/http"

	apperrors "tour-platform/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ok writes the standard success envelope.
func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// fail maps a domain error to an HTTP status and writes the error envelope.
func fail(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
	case errors.Is(err, apperrors.ErrTourNotFound),
		errors.Is(err, apperrors.ErrCampaignNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCouponAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCouponExpired),
		errors.Is(err, apperrors.ErrCouponInactive),
		errors.Is(err, apperrors.ErrUsageLimitReached),
		errors.Is(err, apperrors.ErrMinimumNotMet):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBookingsDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
