package get_active_bookings

import (
	"context"

	"github.com/esh-b/salon-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetActiveBookings(ctx context.Context, phone string) (*models.ActiveBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
