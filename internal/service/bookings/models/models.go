package models

import (
	"time"

	"github.com/esh-b/salon-booking-service/internal/domain"
)

// BookingProjection проекция активного бронирования для выдачи клиенту
// Времена проецируются в display-таймзону сервиса
type BookingProjection struct {
	ID            string `json:"id"`
	StartDatetime string `json:"startDatetime"` // ISO 8601 в display-таймзоне
	EndDatetime   string `json:"endDatetime"`   // ISO 8601 в display-таймзоне
}

// ActiveBookingsResponse ответ со списком активных бронирований клиента
type ActiveBookingsResponse struct {
	Bookings []BookingProjection `json:"bookings"`
}

// BookingResponse полный ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	StartDatetime string  `json:"startDatetime"`
	EndDatetime   string  `json:"endDatetime"`
	BookingReason *string `json:"bookingReason,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// FromDomainBooking конвертирует domain модель в DTO с проекцией времени
// в указанную таймзону
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		StartDatetime: b.StartDatetime.In(loc).Format(time.RFC3339),
		EndDatetime:   b.EndDatetime.In(loc).Format(time.RFC3339),
		BookingReason: b.BookingReason,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует активные бронирования в проекции
// {id, start, end} с временами в указанной таймзоне
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *ActiveBookingsResponse {
	resp := &ActiveBookingsResponse{
		Bookings: make([]BookingProjection, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingProjection{
			ID:            b.ID,
			StartDatetime: b.StartDatetime.In(loc).Format(time.RFC3339),
			EndDatetime:   b.EndDatetime.In(loc).Format(time.RFC3339),
		})
	}

	return resp
}
