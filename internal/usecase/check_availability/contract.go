package check_availability

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountOverlapping(ctx context.Context, start, end time.Time) (int, error)
}

// SlotValidator интерфейс валидатора времени начала слота
type SlotValidator interface {
	Validate(raw string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
