package get_navigation

import (
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
)

type Handler struct {
	service NavigationService
}

func NewHandler(service NavigationService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/navigation
// Header: token (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authenticated := middleware.GetToken(r.Context()) != ""
	handlers.RespondJSON(w, http.StatusOK, h.service.Build(authenticated))
}
