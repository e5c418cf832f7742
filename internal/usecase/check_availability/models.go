package check_availability

import "time"

// Request модель запроса проверки доступности слота
type Request struct {
	StartDatetime string // ISO 8601 строка с обязательным offset
}

// Response модель ответа проверки доступности
type Response struct {
	Available     bool
	StartDatetime time.Time // Начало слота (UTC)
	EndDatetime   time.Time // Конец слота (UTC)
}
