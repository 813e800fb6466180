package get_doctor_schedule

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
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

// Handle GET /api/v1/doctors/{docId}/schedule
// Если настроек нет, возвращаются значения по умолчанию с isDefault=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["docId"]

	result, err := h.service.Get(r.Context(), doctorID)
	if err != nil {
		h.logger.Error("GET /doctors/{id}/schedule - Failed to get schedule: doctor_id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
