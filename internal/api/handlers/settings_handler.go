package handlers

import (
	"net/http"

	"tour-platform/internal/api/middleware"
	"tour-platform/internal/model"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the public site status and the admin settings panel,
// including the kill switch.
type SettingsHandler struct {
	settings *service.SettingsService
	audit    *service.AuditService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *service.SettingsService, audit *service.AuditService) *SettingsHandler {
	return &SettingsHandler{settings: settings, audit: audit}
}

// Status handles GET /api/status, the public site-status probe.
func (h *SettingsHandler) Status(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{
		"booking_enabled":     settings.BookingEnabled,
		"maintenance_mode":    settings.MaintenanceMode,
		"maintenance_message": settings.MaintenanceMessage,
	})
}

// Get handles GET /api/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, settings)
}

// Update handles PUT /api/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "update", "settings", model.SettingsID, "")
	ok(c, http.StatusOK, settings)
}

// KillSwitch handles POST /api/admin/settings/kill-switch
func (h *SettingsHandler) KillSwitch(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settings.KillSwitch(c.Request.Context(), req.Enabled)
	if err != nil {
		fail(c, err)
		return
	}

	detail := "bookings disabled"
	if req.Enabled {
		detail = "bookings enabled"
	}
	h.audit.Record(c.Request.Context(), middleware.Actor(c), "kill-switch", "settings", model.SettingsID, detail)
	ok(c, http.StatusOK, settings)
}
