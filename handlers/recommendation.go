package handlers

import (
	"net/http"

	"glowbook/middleware"
	"glowbook/services/recommendation"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

// RecommendHandler ranks artists for the user in ?userId=. GET /api/recommendations
func RecommendHandler(svc recommendation.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if err := middleware.AuthorizeUser(c, userID); err != nil {
			utils.JSONError(c, err)
			return
		}

		result, err := svc.Recommend(c.Request.Context(), userID)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
