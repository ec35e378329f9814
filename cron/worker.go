package cron

import (
	"context"
	"time"

	"glowbook/config"
	"glowbook/services/notification"
	"glowbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection for the notification queue.
func RedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

// NewServeMux routes notification tasks to their handlers.
func NewServeMux(notifSvc notification.NotificationService, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingCreated, HandleBookingCreatedTask(notifSvc, logger))
	return mux
}

// InitNotificationWorker runs the asynq worker in the background and returns
// the server so the caller can shut it down.
func InitNotificationWorker(cfg config.Config, notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	concurrency := cfg.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	srv := asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewServeMux(notifSvc, logger)

	go func() {
		logger.Info("starting notification worker", zap.Int("concurrency", concurrency))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("failed to start notification worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("notification worker disabled after max attempts")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleBookingCreatedTask decodes the payload and notifies both parties.
// Returning an error lets asynq retry the task.
func HandleBookingCreatedTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingCreated(task)
		if err != nil {
			logger.Error("dropping malformed booking task", zap.Error(err))
			return asynq.SkipRetry
		}

		logger.Info("notifying booking created",
			zap.String("bookingID", p.BookingID),
			zap.String("artistUserID", p.ArtistUserID))

		if err := notifSvc.NotifyBookingCreated(ctx, p); err != nil {
			logger.Warn("booking notification failed", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
