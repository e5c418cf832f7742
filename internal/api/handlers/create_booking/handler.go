package create_booking

import (
	"errors"
	"net/http"

	"github.com/esh-b/salon-booking-service/internal/api/handlers"
	"github.com/esh-b/salon-booking-service/internal/slot"
	createBooking "github.com/esh-b/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFormat      = "Invalid datetime format. Must be ISO 8601 with timezone."
	msgMissingTimezone    = "The appointment start datetime must include timezone info."
	msgPastSlot           = "The requested timeslot is in the past"
	msgSlotNotAvailable   = "The requested timeslot is no longer available"
	msgInternalError      = "Internal error"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidFormat):
			h.logger.Warn("POST /bookings - Invalid datetime format: phone=%s", req.PhoneNumber)
			handlers.RespondJSON(w, http.StatusBadRequest, BookingResponse{Status: StatusFailure, Reason: msgInvalidFormat})

		case errors.Is(err, slot.ErrMissingTimezone):
			h.logger.Warn("POST /bookings - Missing timezone: phone=%s", req.PhoneNumber)
			handlers.RespondJSON(w, http.StatusBadRequest, BookingResponse{Status: StatusFailure, Reason: msgMissingTimezone})

		case errors.Is(err, slot.ErrPastSlot):
			h.logger.Warn("POST /bookings - Past timeslot: phone=%s", req.PhoneNumber)
			handlers.RespondJSON(w, http.StatusBadRequest, BookingResponse{Status: StatusFailure, Reason: msgPastSlot})

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, BookingResponse{Status: StatusFailure, Reason: err.Error()})

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: phone=%s, start=%s", req.PhoneNumber, req.StartDatetime)
			handlers.RespondJSON(w, http.StatusConflict, BookingResponse{Status: StatusFailure, Reason: msgSlotNotAvailable})

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v", req.PhoneNumber, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, BookingResponse{Status: StatusFailure, Reason: msgInternalError})
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, phone=%s",
		result.BookingID, req.PhoneNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
