package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/cache"
	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/promoforge/promoforge-backend/internal/services/generation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type GenerationHandler struct {
	generationService *generation.Service
	store             *cache.Store
}

func NewGenerationHandler(generationService *generation.Service, store *cache.Store) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		store:             store,
	}
}

// GenerateContent godoc
// @Summary Generate campaign content
// @Description Assemble a prompt from the business profile, campaign configuration and customer roster, call the AI model and return exactly three content variations
// @Tags generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateContentRequest true "Generation request"
// @Success 200 {object} models.GenerateContentResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/generate [post]
func (h *GenerationHandler) GenerateContent(c *gin.Context) {
	var req models.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	response, err := h.generationService.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Generation already in progress"})
		case errors.Is(err, generation.ErrQuotaExhausted):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "AI quota exhausted, try again later or upgrade your plan"})
		default:
			logrus.Errorf("Content generation failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// SaveCredential godoc
// @Summary Save AI credential
// @Description Store the user's AI API key for content generation
// @Tags generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "Credential request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/generate/credential [put]
func (h *GenerationHandler) SaveCredential(c *gin.Context) {
	var req struct {
		APIKey string `json:"api_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "API key must not be empty"})
		return
	}

	userID := c.GetString("user_id")
	if err := h.store.SetCredential(c.Request.Context(), userID, strings.TrimSpace(req.APIKey)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save credential", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credential saved successfully"})
}

// DeleteCredential godoc
// @Summary Delete AI credential
// @Description Remove the user's stored AI API key
// @Tags generation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/generate/credential [delete]
func (h *GenerationHandler) DeleteCredential(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.store.DeleteCredential(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete credential", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credential deleted successfully"})
}
