package reschedule_booking

import (
	"context"
	"time"

	"github.com/esh-b/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, start, end time.Time) (int, error)
	Cancel(ctx context.Context, id string) error
}

// SlotValidator интерфейс валидатора времени начала слота
type SlotValidator interface {
	Validate(raw string) (time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
