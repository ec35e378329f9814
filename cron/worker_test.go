package cron

import (
	"context"
	"errors"
	"testing"

	"glowbook/config"
	"glowbook/models"
	"glowbook/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	got []models.BookingCreatedPayload
	err error
}

func (f *fakeNotifier) NotifyBookingCreated(_ context.Context, p models.BookingCreatedPayload) error {
	f.got = append(f.got, p)
	return f.err
}

func bookingTask(t *testing.T) *asynq.Task {
	task, _, err := tasks.NewBookingCreatedTask(models.BookingCreatedPayload{BookingID: "b1", ArtistUserID: "owner-1", UserID: "u1"})
	require.NoError(t, err)
	return task
}

func TestHandleBookingCreatedTaskDelivers(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := HandleBookingCreatedTask(notifier, zap.NewNop())

	require.NoError(t, handler(context.Background(), bookingTask(t)))
	require.Len(t, notifier.got, 1)
	assert.Equal(t, "b1", notifier.got[0].BookingID)
}

func TestHandleBookingCreatedTaskRetriesOnFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("fcm unavailable")}
	handler := HandleBookingCreatedTask(notifier, zap.NewNop())

	err := handler(context.Background(), bookingTask(t))
	assert.EqualError(t, err, "fcm unavailable")
}

func TestHandleBookingCreatedTaskSkipsMalformedPayload(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := HandleBookingCreatedTask(notifier, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingCreated, []byte("not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, notifier.got)
}

func TestServeMuxRoutesBookingCreated(t *testing.T) {
	notifier := &fakeNotifier{}
	mux := NewServeMux(notifier, zap.NewNop())

	require.NoError(t, mux.ProcessTask(context.Background(), bookingTask(t)))
	assert.Len(t, notifier.got, 1)
}

func TestRedisOptUsesQueueDB(t *testing.T) {
	opt := RedisOpt(config.Config{RedisAddr: "redis:6379", RedisQueueDB: 3})
	assert.Equal(t, "redis:6379", opt.Addr)
	assert.Equal(t, 3, opt.DB)
}
