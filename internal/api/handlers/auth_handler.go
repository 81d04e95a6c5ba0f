package handlers

import (
	"net/http"
	"strconv"

	"tour-platform/internal/model"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves admin login and the audit trail.
type AuthHandler struct {
	auth  *service.AuthService
	audit *service.AuditService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, audit *service.AuditService) *AuthHandler {
	return &AuthHandler{auth: auth, audit: audit}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, resp)
}

// AuditLogs handles GET /api/admin/audit-logs
func (h *AuthHandler) AuditLogs(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	entries, err := h.audit.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, entries)
}
