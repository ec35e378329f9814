package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"glowbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingCreated = "booking:created"

// NewBookingCreatedTask builds the task that notifies both parties of a new booking.
func NewBookingCreatedTask(payload models.BookingCreatedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingCreated, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// ParseBookingCreated decodes a booking-created task payload.
func ParseBookingCreated(task *asynq.Task) (models.BookingCreatedPayload, error) {
	var p models.BookingCreatedPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeBookingCreated, err)
	}
	if p.BookingID == "" {
		return p, fmt.Errorf("invalid %s payload: missing bookingId", TypeBookingCreated)
	}
	return p, nil
}
