package get_available_slots

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequest = "invalid request parameters"
	msgDoctorNotFound = "doctor not found"
)

var msgInvalidDays = fmt.Sprintf("days must be an integer between 0 and %d", domain.MaxWindowDays)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{docId}/available-slots
// Query params: days (опционально, число непустых дат)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["docId"]

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 || parsed > domain.MaxWindowDays {
			h.logger.Warn("GET /doctors/{id}/available-slots - Invalid days: %q", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		DoctorID: doctorID,
		Days:     days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/available-slots - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/available-slots - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("GET /doctors/{id}/available-slots - Failed to get slots: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/available-slots - Slots retrieved successfully: doctor_id=%s, dates=%d, slots=%d",
		doctorID, len(result.Window.Buckets), result.Window.TotalSlots())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
