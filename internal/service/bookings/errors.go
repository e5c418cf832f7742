package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда активное бронирование не найдено
	// (отсутствует или уже отменено)
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
