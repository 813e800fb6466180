package verify_otp

import "errors"

var (
	// ErrInvalidOTP возвращается, когда внешний API не принял код
	ErrInvalidOTP = errors.New("verify_otp: invalid otp")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_otp: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_otp: internal error")
)

// InvalidOTPMessage сообщение для пользователя при неверном коде
const InvalidOTPMessage = "Invalid OTP"
