package get_active_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/esh-b/salon-booking-service/internal/api/handlers"
	"github.com/esh-b/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidPhone = "invalid phone number"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{phone}/bookings
// Неизвестный номер телефона - это пустой список, а не 404
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phone := vars["phone"]

	result, err := h.service.GetActiveBookings(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{phone}/bookings - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		default:
			h.logger.Error("GET /customers/{phone}/bookings - Failed to get bookings: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{phone}/bookings - Returned %d booking(s): phone=%s",
		len(result.Bookings), phone)
	handlers.RespondJSON(w, http.StatusOK, result)
}
