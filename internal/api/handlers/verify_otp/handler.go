package verify_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/handlers"
	verifyOTP "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_otp"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "phone and a 6-digit OTP are required"
)

type Handler struct {
	useCase VerifyOTPUseCase
	logger  Logger
}

func NewHandler(useCase VerifyOTPUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &verifyOTP.Request{Phone: req.Phone, OTP: req.OTP})
	if err != nil {
		switch {
		case errors.Is(err, verifyOTP.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, verifyOTP.ErrInvalidOTP):
			h.logger.Warn("POST /otp/verify - Invalid OTP")
			handlers.RespondUnauthorized(w, verifyOTP.InvalidOTPMessage)

		default:
			h.logger.Error("POST /otp/verify - Failed to verify OTP: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
