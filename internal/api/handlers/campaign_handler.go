package handlers

import (
	"net/http"

	"tour-platform/internal/api/middleware"
	"tour-platform/internal/model"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignHandler serves the admin campaign CRUD and the manual apply trigger.
type CampaignHandler struct {
	campaigns *service.CampaignService
	audit     *service.AuditService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaigns *service.CampaignService, audit *service.AuditService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, audit: audit}
}

// Create handles POST /api/admin/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	var req model.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaigns.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "create", "campaign", campaign.ID.Hex(), campaign.Name)
	ok(c, http.StatusCreated, campaign)
}

// List handles GET /api/admin/campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaigns.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, campaigns)
}

// Update handles PATCH /api/admin/campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req model.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaigns.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "update", "campaign", id.Hex(), campaign.Name)
	ok(c, http.StatusOK, campaign)
}

// Delete handles DELETE /api/admin/campaigns/:id
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	if err := h.campaigns.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "delete", "campaign", id.Hex(), "")
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

// Apply handles POST /api/admin/campaigns/apply, running the campaign engine
// immediately instead of waiting for the next scheduled tick.
func (h *CampaignHandler) Apply(c *gin.Context) {
	report, err := h.campaigns.ApplyActiveCampaigns(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), middleware.Actor(c), "apply", "campaign", "", "manual trigger")
	ok(c, http.StatusOK, report)
}
