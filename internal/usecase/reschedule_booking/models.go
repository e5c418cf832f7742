package reschedule_booking

import "time"

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID     string // ID переносимого бронирования
	StartDatetime string // Новое время начала, ISO 8601 строка с обязательным offset
	PhoneNumber   string // Номер телефона клиента (для логов и аудита)
}

// Response модель ответа с новым бронированием
// Перенос не изменяет исходную строку, кроме статуса: создается новая
// строка с тем же customer_id и booking_reason
type Response struct {
	NewBookingID  string    // ID нового бронирования
	OldBookingID  string    // ID отмененного бронирования
	StartDatetime time.Time // Новое начало слота (UTC)
	EndDatetime   time.Time // Новый конец слота (UTC)
}
