package notification

import (
	"context"
	"fmt"

	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// PushSender delivers one FCM message. *messaging.Client satisfies it.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService tells artists and customers about their bookings.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, p models.BookingCreatedPayload) error
}

// DefaultNotificationService pushes to the artist and emails the customer.
// Either gateway may be nil, in which case that channel is skipped.
type DefaultNotificationService struct {
	users  userRepo.UserRepository
	push   PushSender
	mail   Mailer
	logger *zap.Logger
}

func NewDefaultNotificationService(users userRepo.UserRepository, push PushSender, mail Mailer, logger *zap.Logger) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultNotificationService{users: users, push: push, mail: mail, logger: logger}, nil
}

// NotifyBookingCreated sends the artist a push and the customer a confirmation
// email. A recipient without a token or address is skipped; gateway failures
// are returned so the task is retried.
func (s *DefaultNotificationService) NotifyBookingCreated(ctx context.Context, p models.BookingCreatedPayload) error {
	if err := s.pushArtist(ctx, p); err != nil {
		return err
	}
	return s.emailCustomer(ctx, p)
}

func (s *DefaultNotificationService) pushArtist(ctx context.Context, p models.BookingCreatedPayload) error {
	if s.push == nil {
		return nil
	}
	artist, err := s.users.GetByID(ctx, p.ArtistUserID)
	if err != nil {
		return utils.Upstream("could not load artist account", err)
	}
	if artist == nil || artist.FCMToken == "" {
		s.logger.Info("artist has no FCM token, skipping push",
			zap.String("artistUserID", p.ArtistUserID), zap.String("bookingID", p.BookingID))
		return nil
	}

	msg := &messaging.Message{
		Token: artist.FCMToken,
		Notification: &messaging.Notification{
			Title: "New booking request",
			Body:  fmt.Sprintf("%s appointment on %s, %s", p.Category, p.Date, p.TimeRange),
		},
		Data: map[string]string{
			"type":      "booking_created",
			"role":      "provider",
			"bookingId": p.BookingID,
			"date":      p.Date,
			"timeRange": p.TimeRange,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	response, err := s.push.Send(ctx, msg)
	if err != nil {
		return utils.Upstream("failed to send FCM message", err)
	}
	s.logger.Debug("booking push sent", zap.String("bookingID", p.BookingID), zap.String("messageID", response))
	return nil
}

func (s *DefaultNotificationService) emailCustomer(ctx context.Context, p models.BookingCreatedPayload) error {
	if s.mail == nil {
		return nil
	}
	customer, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return utils.Upstream("could not load customer account", err)
	}
	if customer == nil || customer.Email == "" {
		s.logger.Info("customer has no email, skipping confirmation",
			zap.String("userID", p.UserID), zap.String("bookingID", p.BookingID))
		return nil
	}

	subject, body := bookingConfirmationEmail(customer.Username, p)
	if err := s.mail.Send(ctx, []string{customer.Email}, subject, body); err != nil {
		return utils.Upstream("failed to send confirmation email", err)
	}
	return nil
}

func bookingConfirmationEmail(name string, p models.BookingCreatedPayload) (string, string) {
	if name == "" {
		name = "there"
	}
	subject := "Your booking request has been received"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s appointment on %s (%s) has been requested.\nBooking reference: %s\n\nThe artist will confirm shortly.\n",
		name, p.Category, p.Date, p.TimeRange, p.BookingID,
	)
	return subject, body
}
