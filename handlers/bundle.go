package handlers

import (
	"net/http"

	"glowbook/services/booking"
	"glowbook/services/recommendation"
	"glowbook/services/user"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc

	// Recommendation endpoints
	RecommendHandler gin.HandlerFunc

	// User endpoints
	CheckUserExistsHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle builds the handlers over the given services.
func NewHandlerBundle(bookingSvc booking.BookingService, recommendationSvc recommendation.RecommendationService, userSvc user.UserService) *HandlerBundle {
	return &HandlerBundle{
		CreateBookingHandler:   CreateBookingHandler(bookingSvc),
		RecommendHandler:       RecommendHandler(recommendationSvc),
		CheckUserExistsHandler: CheckUserExistsHandler(userSvc),
		HealthHandler:          HealthHandler,
	}
}

// HealthHandler serves the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	status, code := "ok", http.StatusOK
	if !health.Healthy() {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"mongo":     health.Mongo,
		"redis":     health.Redis,
		"checkedAt": health.CheckedAt,
	})
}
