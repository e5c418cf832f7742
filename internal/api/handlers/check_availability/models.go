package check_availability

// Статусы ответа проверки доступности
const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
	StatusError       = "error"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Status string `json:"status"`           // available | unavailable | error
	Reason string `json:"reason,omitempty"` // Причина, если слот недоступен или запрос некорректен
}
