package handlers

import (
	"net/http"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/promoforge/promoforge-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BusinessProfileHandler struct {
	profileService *services.BusinessProfileService
}

func NewBusinessProfileHandler(profileService *services.BusinessProfileService) *BusinessProfileHandler {
	return &BusinessProfileHandler{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Get business profile
// @Description Return the current user's business profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BusinessProfileResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/profile [get]
func (h *BusinessProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	response, err := h.profileService.GetProfile(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SaveProfile godoc
// @Summary Save business profile
// @Description Create or update the current user's business profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SaveBusinessProfileRequest true "Business profile"
// @Success 200 {object} models.BusinessProfileResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/profile [put]
func (h *BusinessProfileHandler) SaveProfile(c *gin.Context) {
	var req models.SaveBusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	response, err := h.profileService.SaveProfile(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid brand voice") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
