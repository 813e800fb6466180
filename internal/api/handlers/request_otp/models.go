package request_otp

// RequestOTPRequest HTTP request model
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// RequestOTPResponse HTTP response model
type RequestOTPResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	ResendAfterSeconds int    `json:"resendAfterSeconds"`
}

// CooldownResponse ответ 429 с оставшейся паузой
type CooldownResponse struct {
	Error              string `json:"error"`
	ResendAfterSeconds int    `json:"resendAfterSeconds"`
}
