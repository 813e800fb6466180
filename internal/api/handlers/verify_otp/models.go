package verify_otp

import verifyOTP "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_otp"

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
	Existing          bool   `json:"existing"`
	Token             string `json:"token,omitempty"`
	Message           string `json:"message"`
	NeedsRegistration bool   `json:"needsRegistration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyOTP.Response) *VerifyOTPResponse {
	return &VerifyOTPResponse{
		Existing:          resp.Existing,
		Token:             resp.Token,
		Message:           resp.Message,
		NeedsRegistration: resp.NeedsRegistration,
	}
}
