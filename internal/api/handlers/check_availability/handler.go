package check_availability

import (
	"errors"
	"net/http"

	"github.com/esh-b/salon-booking-service/internal/api/handlers"
	"github.com/esh-b/salon-booking-service/internal/slot"
	checkAvailability "github.com/esh-b/salon-booking-service/internal/usecase/check_availability"
)

const (
	msgMissingStartParam = "query parameter 'start' is required"
	msgInvalidFormat     = "Invalid datetime format. Must be ISO 8601 with timezone."
	msgMissingTimezone   = "The appointment start datetime must include timezone info."
	msgPastSlot          = "The requested timeslot is in the past"
	msgSlotUnavailable   = "The requested timeslot is not available"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=<iso8601>
// Ошибки валидации возвращаются статусом "error" в теле ответа, а не
// HTTP ошибкой: для вызывающей стороны это валидный результат проверки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	if start == "" {
		h.logger.Warn("GET /availability - Missing 'start' query parameter")
		handlers.RespondBadRequest(w, msgMissingStartParam)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{StartDatetime: start})
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidFormat):
			handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Status: StatusError, Reason: msgInvalidFormat})

		case errors.Is(err, slot.ErrMissingTimezone):
			handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Status: StatusError, Reason: msgMissingTimezone})

		case errors.Is(err, slot.ErrPastSlot):
			handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Status: StatusError, Reason: msgPastSlot})

		default:
			h.logger.Error("GET /availability - Failed to check availability: start=%s, error=%v", start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Available {
		handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Status: StatusUnavailable, Reason: msgSlotUnavailable})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Status: StatusAvailable})
}
