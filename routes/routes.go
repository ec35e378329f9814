package routes

import (
	"time"

	"glowbook/config"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(cfg.RequireAuth))
		bookingGroup.POST("", hb.CreateBookingHandler)
	}
}

// RegisterRecommendationRoutes registers recommendation endpoints.
func RegisterRecommendationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	api := r.Group("/api/recommendations")
	{
		api.Use(middleware.JWTAuthMiddleware(cfg.RequireAuth))
		api.GET("", hb.RecommendHandler)
	}
}

// RegisterUserRoutes registers user endpoints. The lookup runs before sign up
// and is always public.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/exists", hb.CheckUserExistsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config, logger *zap.Logger) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	RegisterHealthRoute(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb, cfg)
	RegisterRecommendationRoutes(r, hb, cfg)
}
