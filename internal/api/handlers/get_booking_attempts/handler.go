package get_booking_attempts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/attempts"
)

const msgInvalidLimit = "limit must be an integer between 1 and 200"

type Handler struct {
	service AttemptsService
	logger  Logger
}

func NewHandler(service AttemptsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{docId}/booking-attempts
// Query params: limit (опционально, по умолчанию 50)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["docId"]

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.List(r.Context(), doctorID, limit)
	if err != nil {
		if errors.Is(err, attempts.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		h.logger.Error("GET /doctors/{id}/booking-attempts - Failed to list attempts: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
