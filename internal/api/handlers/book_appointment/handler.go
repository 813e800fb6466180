package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	bookAppointment "github.com/m04kA/SMC-DoctorBooking/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgLoginRequired      = "Login to book appointment"
	msgInvalidSlot        = "invalid slot: expected slotDate D_M_YYYY and slotTime like 10:30 AM"
	msgSlotInPast         = "selected slot is in the past"
	msgRejectedFallback   = "slot is not available"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Header: token (сессия пользователя)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())
	if token == "" {
		h.logger.Warn("POST /appointments - Missing session token")
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		var rejected *bookAppointment.RejectedError

		switch {
		case errors.Is(err, bookAppointment.ErrUnauthorized):
			h.logger.Warn("POST /appointments - Unauthorized: doctor_id=%s", req.DocID)
			handlers.RespondUnauthorized(w, msgLoginRequired)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid slot: doctor_id=%s, error=%v", req.DocID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, bookAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in the past: doctor_id=%s, date=%s, time=%s",
				req.DocID, req.SlotDate, req.SlotTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.As(err, &rejected):
			h.logger.Warn("POST /appointments - Rejected: doctor_id=%s, message=%s", req.DocID, rejected.Message)
			message := rejected.Message
			if message == "" {
				message = msgRejectedFallback
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		default:
			h.logger.Error("POST /appointments - Failed to book: doctor_id=%s, error=%v", req.DocID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: doctor_id=%s, date=%s, time=%s",
		req.DocID, req.SlotDate, req.SlotTime)
	handlers.RespondJSON(w, http.StatusCreated, &BookAppointmentResponse{
		Success: result.Success,
		Message: result.Message,
	})
}
