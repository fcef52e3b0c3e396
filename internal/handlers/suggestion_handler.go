package handlers

import (
	"net/http"
	"time"

	"github.com/promoforge/promoforge-backend/internal/services/suggestions"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestionService *suggestions.Service
}

func NewSuggestionHandler(suggestionService *suggestions.Service) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
	}
}

// GetDailySuggestions godoc
// @Summary Daily campaign suggestions
// @Description Return the day's rotating set of campaign suggestions for a business category
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param category query string false "Business category (defaults to general)"
// @Success 200 {object} models.DailySuggestionsResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/suggestions/daily [get]
func (h *SuggestionHandler) GetDailySuggestions(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		category = "general"
	}

	response, err := h.suggestionService.GetDaily(c.Request.Context(), category, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get suggestions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
