package notification

import (
	"context"
	"fmt"

	"glowbook/models"
	"glowbook/services/tasks"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the publisher uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuePublisher turns committed bookings into booking-created tasks.
type QueuePublisher struct {
	client Enqueuer
}

func NewQueuePublisher(client Enqueuer) *QueuePublisher {
	return &QueuePublisher{client: client}
}

func (p *QueuePublisher) BookingCreated(ctx context.Context, b models.Booking) error {
	task, opts, err := tasks.NewBookingCreatedTask(models.NewBookingCreatedPayload(b))
	if err != nil {
		return fmt.Errorf("build booking task: %w", err)
	}
	if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue booking task: %w", err)
	}
	return nil
}

// NopPublisher drops every event; used when notifications are disabled.
type NopPublisher struct{}

func (NopPublisher) BookingCreated(context.Context, models.Booking) error { return nil }
