package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/esh-b/salon-booking-service/internal/usecase/reschedule_booking"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	StartDatetime string `json:"startDatetime"` // "2025-04-23T16:00:00-04:00"
	PhoneNumber   string `json:"phoneNumber,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	Status        string `json:"status"` // success | failure
	NewBookingID  string `json:"newBookingId,omitempty"`
	OldBookingID  string `json:"oldBookingId,omitempty"`
	StartDatetime string `json:"startDatetime,omitempty"`
	EndDatetime   string `json:"endDatetime,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) *rescheduleBooking.Request {
	return &rescheduleBooking.Request{
		BookingID:     bookingID,
		StartDatetime: r.StartDatetime,
		PhoneNumber:   r.PhoneNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		Status:        StatusSuccess,
		NewBookingID:  resp.NewBookingID,
		OldBookingID:  resp.OldBookingID,
		StartDatetime: resp.StartDatetime.Format(time.RFC3339),
		EndDatetime:   resp.EndDatetime.Format(time.RFC3339),
	}
}
