package handlers

import (
	"net/http"

	"nestcare/models"
	"nestcare/services/feed"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaregiverHandler serves the featured-caregiver feed.
type CaregiverHandler struct {
	Feed   feed.FeaturedService
	Logger *zap.Logger
}

// ListFeatured handles GET /api/caregivers/featured.
func (h *CaregiverHandler) ListFeatured(c *gin.Context) {
	caregivers, err := h.Feed.Featured(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListFeatured: failed to load featured caregivers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load featured caregivers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"caregivers": caregivers})
}

// GetCaregiver handles GET /api/caregivers/:id.
func (h *CaregiverHandler) GetCaregiver(c *gin.Context) {
	caregiver, err := h.Feed.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "caregiver not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, caregiver)
}

// UpsertCaregiver handles PUT /api/caregivers/:id. Keeps the featured pool
// current: saving a featured profile warms the cache, unfeaturing evicts it.
func (h *CaregiverHandler) UpsertCaregiver(c *gin.Context) {
	var caregiver models.Caregiver
	if err := c.ShouldBindJSON(&caregiver); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	caregiver.ID = c.Param("id")

	if err := h.Feed.Save(c.Request.Context(), &caregiver); err != nil {
		h.Logger.Error("UpsertCaregiver: save failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save caregiver", err.Error())
		return
	}
	c.JSON(http.StatusOK, caregiver)
}

// RefreshFeatured handles POST /api/caregivers/featured/refresh.
func (h *CaregiverHandler) RefreshFeatured(c *gin.Context) {
	if err := h.Feed.Refresh(c.Request.Context()); err != nil {
		h.Logger.Error("RefreshFeatured: refresh failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to refresh featured caregivers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
