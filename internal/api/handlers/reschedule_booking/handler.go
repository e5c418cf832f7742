package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/esh-b/salon-booking-service/internal/api/handlers"
	"github.com/esh-b/salon-booking-service/internal/slot"
	rescheduleBooking "github.com/esh-b/salon-booking-service/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFormat      = "Invalid datetime format. Must be ISO 8601 with timezone."
	msgMissingTimezone    = "The appointment start datetime must include timezone info."
	msgPastSlot           = "The requested timeslot is in the past"
	msgSlotNotAvailable   = "The requested timeslot is not available"
	msgBookingNotFound    = "Booking not found or already cancelled"
	msgInternalError      = "Internal error"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidFormat):
			h.logger.Warn("POST /bookings/{id}/reschedule - Invalid datetime format: booking_id=%s", bookingID)
			handlers.RespondJSON(w, http.StatusBadRequest, RescheduleBookingResponse{Status: StatusFailure, Reason: msgInvalidFormat})

		case errors.Is(err, slot.ErrMissingTimezone):
			h.logger.Warn("POST /bookings/{id}/reschedule - Missing timezone: booking_id=%s", bookingID)
			handlers.RespondJSON(w, http.StatusBadRequest, RescheduleBookingResponse{Status: StatusFailure, Reason: msgMissingTimezone})

		case errors.Is(err, slot.ErrPastSlot):
			h.logger.Warn("POST /bookings/{id}/reschedule - Past timeslot: booking_id=%s", bookingID)
			handlers.RespondJSON(w, http.StatusBadRequest, RescheduleBookingResponse{Status: StatusFailure, Reason: msgPastSlot})

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, RescheduleBookingResponse{Status: StatusFailure, Reason: err.Error()})

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondJSON(w, http.StatusNotFound, RescheduleBookingResponse{Status: StatusFailure, Reason: msgBookingNotFound})

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings/{id}/reschedule - Slot not available: booking_id=%s, start=%s", bookingID, req.StartDatetime)
			handlers.RespondJSON(w, http.StatusConflict, RescheduleBookingResponse{Status: StatusFailure, Reason: msgSlotNotAvailable})

		default:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed to reschedule: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, RescheduleBookingResponse{Status: StatusFailure, Reason: msgInternalError})
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Booking rescheduled: old_booking_id=%s, new_booking_id=%s",
		result.OldBookingID, result.NewBookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
