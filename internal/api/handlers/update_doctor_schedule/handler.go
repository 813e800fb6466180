package update_doctor_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/schedule"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{docId}/schedule
// Частичное обновление: непереданные поля сохраняют текущие значения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["docId"]

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), doctorID, &req)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			h.logger.Warn("PUT /doctors/{id}/schedule - Invalid data: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, invalidInputMessage(err))
			return
		}

		h.logger.Error("PUT /doctors/{id}/schedule - Failed to update schedule: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /doctors/{id}/schedule - Schedule updated: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// invalidInputMessage убирает префикс пакета из текста ошибки валидации
func invalidInputMessage(err error) string {
	prefix := schedule.ErrInvalidInput.Error() + ": "
	msg := err.Error()
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
