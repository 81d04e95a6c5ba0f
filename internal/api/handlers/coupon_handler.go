package handlers

import (
	"net/http"

	"tour-platform/internal/api/middleware"
	"tour-platform/internal/model"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CouponHandler serves the public validate endpoint and the admin coupon CRUD.
type CouponHandler struct {
	coupons *service.CouponService
	audit   *service.AuditService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(coupons *service.CouponService, audit *service.AuditService) *CouponHandler {
	return &CouponHandler{coupons: coupons, audit: audit}
}

// Validate handles POST /api/coupons/validate. It is a dry run: usage counts
// are untouched so the client can re-check while the form is edited.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req model.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.coupons.Validate(c.Request.Context(), req.Code, req.BookingAmount)
	if err != nil {
		fail(c, err)
		return
	}

	if !result.Valid {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   result.Reason,
			"data":    result,
		})
		return
	}

	ok(c, http.StatusOK, result)
}

// Create handles POST /api/admin/coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var req model.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := h.coupons.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "create", "coupon", coupon.Code, "")
	ok(c, http.StatusCreated, coupon)
}

// List handles GET /api/admin/coupons
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.coupons.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, coupons)
}

// Update handles PATCH /api/admin/coupons/:id
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon id"})
		return
	}

	var req model.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := h.coupons.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "update", "coupon", id.Hex(), "")
	ok(c, http.StatusOK, coupon)
}

// Delete handles DELETE /api/admin/coupons/:id
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon id"})
		return
	}

	if err := h.coupons.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "delete", "coupon", id.Hex(), "")
	ok(c, http.StatusOK, gin.H{"deleted": true})
}
