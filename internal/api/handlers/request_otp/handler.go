package request_otp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	requestOTP "github.com/m04kA/SMC-DoctorBooking/internal/usecase/request_otp"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "invalid phone number"
	msgCooldown           = "please wait before requesting a new OTP"
	msgRejectedFallback   = "failed to send OTP"
)

type Handler struct {
	useCase RequestOTPUseCase
	logger  Logger
}

func NewHandler(useCase RequestOTPUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &requestOTP.Request{Phone: req.Phone})
	if err != nil {
		var cooldown *requestOTP.CooldownError
		var rejected *requestOTP.RejectedError

		switch {
		case errors.Is(err, requestOTP.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.As(err, &cooldown):
			w.Header().Set("Retry-After", strconv.Itoa(cooldown.Seconds()))
			handlers.RespondJSON(w, http.StatusTooManyRequests, &CooldownResponse{
				Error:              msgCooldown,
				ResendAfterSeconds: cooldown.Seconds(),
			})

		case errors.As(err, &rejected):
			message := rejected.Message
			if message == "" {
				message = msgRejectedFallback
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		default:
			h.logger.Error("POST /otp/request - Failed to request OTP: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &RequestOTPResponse{
		Success:            result.Success,
		Message:            result.Message,
		ResendAfterSeconds: result.ResendAfterSeconds,
	})
}
