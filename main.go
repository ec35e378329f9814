package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowbook/config"
	"glowbook/cron"
	"glowbook/database"
	providerRepo "glowbook/database/repository/provider"
	reviewRepo "glowbook/database/repository/review"
	schedulerRepo "glowbook/database/repository/scheduler"
	userRepoPkg "glowbook/database/repository/user"
	"glowbook/handlers"
	"glowbook/routes"
	"glowbook/services/booking"
	"glowbook/services/notification"
	"glowbook/services/recommendation"
	"glowbook/services/user"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetJWTSecret(cfg.JWTSecret)
	if cfg.RequireAuth && !utils.JWTConfigured() {
		logger.Fatal("main: REQUIRE_AUTH is set but JWT_SECRET is empty")
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.InitDB(rootCtx)
	if err != nil {
		logger.Fatal("main: failed to initialize database", zap.Error(err))
	}
	db := database.Database(mongoClient)
	cache, err := utils.NewCacheClient(rootCtx, cfg)
	if err != nil {
		logger.Warn("main: running without provider cache", zap.Error(err))
	}
	utils.StartHealthMonitor(rootCtx, cache, mongoClient, 30*time.Second)

	// repositories.
	bookingRepo := schedulerRepo.NewMongoSchedulerRepo(db)
	provRepo := providerRepo.NewCachedProviderRepo(
		providerRepo.NewMongoProviderRepo(db), cache, cfg.ProviderCacheExpiry(), logger)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	reviewsRepo := reviewRepo.NewMongoReviewRepo(db)

	// notifications.
	var publisher booking.EventPublisher = notification.NopPublisher{}
	var worker *asynq.Server
	var queue *asynq.Client
	if cfg.NotificationsEnabled {
		notificationService, err := notification.NewDefaultNotificationService(
			userRepo, pushSender(rootCtx, logger), mailer(cfg), logger.Named("notification"))
		if err != nil {
			logger.Fatal("main: failed to initialize notification service", zap.Error(err))
		}
		queue = asynq.NewClient(cron.RedisOpt(cfg))
		publisher = notification.NewQueuePublisher(queue)
		worker = cron.InitNotificationWorker(cfg, notificationService, logger.Named("worker"))
	}

	// services.
	bookingService := booking.NewBookingService(
		bookingRepo, provRepo, publisher, booking.RulesFromConfig(cfg), logger.Named("booking"))
	recommendationService := recommendation.NewRecommendationService(
		bookingRepo, reviewsRepo, userRepo, provRepo, cfg, logger.Named("recommendation"))
	userService := user.NewUserService(userRepo)

	handlerBundle := handlers.NewHandlerBundle(bookingService, recommendationService, userService)

	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle, cfg, logger)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		_ = queue.Close()
	}
	stop()
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	if cache != nil {
		_ = cache.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// pushSender returns the FCM client, or nil when Firebase cannot be initialized.
func pushSender(ctx context.Context, logger *zap.Logger) notification.PushSender {
	client, err := utils.FirebaseInit(ctx)
	if err != nil {
		logger.Warn("main: push notifications disabled", zap.Error(err))
		return nil
	}
	return client
}

// mailer returns the SMTP relay, or nil when none is configured.
func mailer(cfg config.Config) notification.Mailer {
	m := notification.NewSMTPMailer(cfg)
	if m == nil {
		return nil
	}
	return m
}
