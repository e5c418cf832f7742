package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование отсутствует
	// или уже отменено (отмена терминальна, перенос отмененного невозможен)
	ErrBookingNotFound = errors.New("reschedule_booking: active booking not found")

	// ErrSlotNotAvailable возвращается, когда новый слот пересекается
	// с активным бронированием; исходное бронирование остается нетронутым
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
