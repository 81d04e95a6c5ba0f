package handlers

import (
	"net/http"

	"tour-platform/internal/api/middleware"
	"tour-platform/internal/model"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingHandler serves the public booking submission and the admin booking
// views.
type BookingHandler struct {
	bookings *service.BookingService
	audit    *service.AuditService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService, audit *service.AuditService) *BookingHandler {
	return &BookingHandler{bookings: bookings, audit: audit}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, booking)
}

// GetByReference handles GET /api/bookings/:reference
func (h *BookingHandler) GetByReference(c *gin.Context) {
	booking, err := h.bookings.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, booking)
}

// List handles GET /api/admin/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, bookings)
}

// UpdateStatus handles PATCH /api/admin/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.bookings.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "update-status", "booking", id.Hex(), req.Status)
	ok(c, http.StatusOK, gin.H{"status": req.Status})
}

// Loyalty handles GET /api/admin/loyalty/:email
func (h *BookingHandler) Loyalty(c *gin.Context) {
	account, err := h.bookings.Loyalty(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no loyalty account for this email"})
		return
	}

	ok(c, http.StatusOK, account)
}
