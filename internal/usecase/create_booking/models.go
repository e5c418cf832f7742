package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	StartDatetime string  // ISO 8601 строка с обязательным offset
	Name          string  // Имя клиента
	PhoneNumber   string  // Номер телефона (ключ дедупликации клиентов)
	Email         *string // Email (опционально, только для нового клиента)
	BookingReason *string // Причина визита (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID     string    // ID созданного бронирования
	CustomerID    string    // ID клиента (существующего или созданного)
	StartDatetime time.Time // Начало слота (UTC)
	EndDatetime   time.Time // Конец слота (UTC)
	CreatedAt     time.Time // Время создания
}
