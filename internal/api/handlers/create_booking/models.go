package create_booking

import (
	"time"

	createBooking "github.com/esh-b/salon-booking-service/internal/usecase/create_booking"
)

// Статусы ответа бронирования
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartDatetime string  `json:"startDatetime"` // "2025-04-23T16:00:00-04:00"
	Name          string  `json:"name"`
	PhoneNumber   string  `json:"phoneNumber"`
	Email         *string `json:"email,omitempty"`
	BookingReason *string `json:"bookingReason,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Status        string `json:"status"` // success | failure
	BookingID     string `json:"bookingId,omitempty"`
	StartDatetime string `json:"startDatetime,omitempty"`
	EndDatetime   string `json:"endDatetime,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		StartDatetime: r.StartDatetime,
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
		BookingReason: r.BookingReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Status:        StatusSuccess,
		BookingID:     resp.BookingID,
		StartDatetime: resp.StartDatetime.Format(time.RFC3339),
		EndDatetime:   resp.EndDatetime.Format(time.RFC3339),
	}
}
