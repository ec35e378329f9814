package handlers

import (
	"fmt"
	"net/http"
	"time"

	"glowbook/middleware"
	"glowbook/models"
	"glowbook/services/booking"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBookingResponse struct {
	Success            bool                      `json:"success"`
	BookingID          string                    `json:"bookingId"`
	ResponseTime       string                    `json:"responseTime"`
	Message            string                    `json:"message"`
	AppointmentDetails models.AppointmentDetails `json:"appointmentDetails"`
}

type bookingFailure struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Code    utils.ErrorCode `json:"code"`
}

// CreateBookingHandler admits a booking request. POST /api/bookings
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := getLogger(c)

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("invalid booking payload", zap.Error(err))
			writeBookingError(c, logger, utils.NewAppError(utils.ErrInvalidArgument, "Invalid request body"))
			return
		}
		if err := middleware.AuthorizeUser(c, req.UserID); err != nil {
			writeBookingError(c, logger, err)
			return
		}

		confirmation, err := svc.CreateBooking(c.Request.Context(), req)
		if err != nil {
			writeBookingError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, createBookingResponse{
			Success:            true,
			BookingID:          confirmation.BookingID,
			ResponseTime:       fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
			Message:            "Booking created successfully",
			AppointmentDetails: confirmation.Details,
		})
	}
}

func writeBookingError(c *gin.Context, logger *zap.Logger, err error) {
	status := utils.HTTPStatus(err)
	body := bookingFailure{Error: utils.PublicMessage(err), Code: utils.ErrInternal}
	if appErr, ok := utils.AsAppError(err); ok {
		body.Code = appErr.Code
	}

	if status >= http.StatusInternalServerError {
		logger.Error("booking failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Info("booking rejected", zap.Int("status", status), zap.String("code", string(body.Code)))
	}
	c.JSON(status, body)
}
