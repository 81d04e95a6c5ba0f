package handlers

import (
	"net/http"

	"tour-platform/internal/api/middleware"
	"tour-platform/internal/model"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourHandler serves the public tour catalog and the admin tour CRUD.
type TourHandler struct {
	tours *service.TourService
	audit *service.AuditService
}

// NewTourHandler creates a new tour handler
func NewTourHandler(tours *service.TourService, audit *service.AuditService) *TourHandler {
	return &TourHandler{tours: tours, audit: audit}
}

// ListPublic handles GET /api/tours
func (h *TourHandler) ListPublic(c *gin.Context) {
	tours, err := h.tours.List(c.Request.Context(), true)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, tours)
}

// Get handles GET /api/tours/:id
func (h *TourHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour id"})
		return
	}

	tour, err := h.tours.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, tour)
}

// ListAdmin handles GET /api/admin/tours, including unpublished tours.
func (h *TourHandler) ListAdmin(c *gin.Context) {
	tours, err := h.tours.List(c.Request.Context(), false)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, tours)
}

// Create handles POST /api/admin/tours
func (h *TourHandler) Create(c *gin.Context) {
	var req model.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour, err := h.tours.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "create", "tour", tour.ID.Hex(), tour.Title)
	ok(c, http.StatusCreated, tour)
}

// Update handles PATCH /api/admin/tours/:id
func (h *TourHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour id"})
		return
	}

	var req model.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour, err := h.tours.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "update", "tour", id.Hex(), tour.Title)
	ok(c, http.StatusOK, tour)
}

// Delete handles DELETE /api/admin/tours/:id
func (h *TourHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour id"})
		return
	}

	if err := h.tours.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "delete", "tour", id.Hex(), "")
	ok(c, http.StatusOK, gin.H{"deleted": true})
}
