package health

import (
	"net/http"

	"github.com/esh-b/salon-booking-service/internal/api/handlers"
)

// HealthResponse ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
