package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowbook/config"
	providerRepo "glowbook/database/repository/provider"
	schedulerRepo "glowbook/database/repository/scheduler"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingService admits new appointments.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// EventPublisher is notified after a booking has been committed.
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking models.Booking) error
}

// Rules are the admission constants.
type Rules struct {
	LeadDays        int
	DefaultCapacity int
	Location        *time.Location
}

// DefaultRules: three days of lead time, one booking per slot, UTC calendar.
var DefaultRules = Rules{LeadDays: 3, DefaultCapacity: 1, Location: time.UTC}

// RulesFromConfig reads the admission constants from cfg.
func RulesFromConfig(cfg config.Config) Rules {
	return Rules{
		LeadDays:        cfg.BookingLeadDays,
		DefaultCapacity: cfg.DefaultSlotCapacity,
		Location:        cfg.Location(),
	}
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         schedulerRepo.SchedulerRepository
	ProviderRepo providerRepo.ProviderRepository
	Publisher    EventPublisher
	Rules        Rules
	Now          func() time.Time
	Logger       *zap.Logger
}

// NewBookingService wires a DefaultBookingService with the wall clock.
func NewBookingService(repo schedulerRepo.SchedulerRepository, providers providerRepo.ProviderRepository, publisher EventPublisher, rules Rules, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:         repo,
		ProviderRepo: providers,
		Publisher:    publisher,
		Rules:        rules,
		Now:          time.Now,
		Logger:       logger,
	}
}

// CreateBooking validates req and commits it. Validation short-circuits in
// order: required fields, time format, date and lead time, provider, capacity.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	req = trimRequest(req)

	// 1. Required fields
	if missing := missingFields(req); len(missing) > 0 {
		return nil, utils.NewAppError(utils.ErrMissingFields,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	// 2. Time format
	timeRange, err := NormalizeTimeRange(req.TimeRange)
	if err != nil {
		return nil, err
	}

	// 3. Lead time
	date, err := s.checkLeadTime(req.Date)
	if err != nil {
		return nil, err
	}

	// 4. Provider
	provider, err := s.ProviderRepo.GetByUserID(ctx, req.ArtistUserID)
	if err != nil {
		return nil, utils.Upstream("Failed to load artist", err)
	}
	if provider == nil {
		return nil, utils.NewAppError(utils.ErrProviderNotFound, "Makeup artist not found")
	}

	// 5. Capacity and insert, atomically
	booking := models.Booking{
		ID:           uuid.New().String(),
		ArtistID:     provider.ID,
		ArtistUserID: req.ArtistUserID,
		UserID:       req.UserID,
		Category:     req.Category,
		Date:         date,
		TimeRange:    timeRange,
		Remarks:      req.Remarks,
		Status:       models.StatusInProgress,
		CreatedAt:    s.now().UTC(),
	}
	capacity := provider.Capacity(s.Rules.DefaultCapacity)
	if err := s.Repo.ReserveSlot(ctx, &booking, slotCheck(timeRange, capacity)); err != nil {
		if _, ok := utils.AsAppError(err); ok {
			return nil, err
		}
		return nil, utils.Upstream("Failed to create booking", err)
	}

	s.logger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("artistID", booking.ArtistID),
		zap.String("date", booking.Date),
		zap.String("timeRange", booking.TimeRange),
		zap.Int("capacity", capacity))

	if s.Publisher != nil {
		if err := s.Publisher.BookingCreated(ctx, booking); err != nil {
			s.logger().Warn("failed to publish booking event",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return &models.BookingConfirmation{
		BookingID: booking.ID,
		Details: models.AppointmentDetails{
			Date:      booking.Date,
			TimeRange: booking.TimeRange,
			Category:  booking.Category,
		},
	}, nil
}

// checkLeadTime parses raw and returns it as YYYY-MM-DD if it is at least
// LeadDays after today. Both sides are calendar dates in the rules' location.
func (s *DefaultBookingService) checkLeadTime(raw string) (string, error) {
	loc := s.Rules.Location
	if loc == nil {
		loc = time.UTC
	}

	day, err := parseCalendarDate(raw, loc)
	if err != nil {
		return "", utils.NewAppError(utils.ErrInvalidDate,
			fmt.Sprintf("Invalid date %q. Use YYYY-MM-DD", raw))
	}

	now := s.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	earliest := today.AddDate(0, 0, s.Rules.LeadDays)
	if day.Before(earliest) {
		return "", utils.NewAppError(utils.ErrLeadTimeViolation,
			fmt.Sprintf("Bookings must be made at least %d days in advance", s.Rules.LeadDays))
	}
	return day.Format(dateLayout), nil
}

// parseCalendarDate accepts YYYY-MM-DD or RFC3339. For RFC3339 the date part
// is taken as written, without converting between zones.
func parseCalendarDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func trimRequest(req models.BookingRequest) models.BookingRequest {
	req.UserID = strings.TrimSpace(req.UserID)
	req.ArtistUserID = strings.TrimSpace(req.ArtistUserID)
	req.Category = strings.TrimSpace(req.Category)
	req.Date = strings.TrimSpace(req.Date)
	req.TimeRange = strings.TrimSpace(req.TimeRange)
	req.Remarks = strings.TrimSpace(req.Remarks)
	return req
}

func missingFields(req models.BookingRequest) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"userId", req.UserID},
		{"artistUserId", req.ArtistUserID},
		{"category", req.Category},
		{"date", req.Date},
		{"timeRange", req.TimeRange},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
