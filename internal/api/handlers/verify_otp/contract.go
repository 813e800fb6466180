package verify_otp

import (
	"context"

	verifyOTP "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_otp"
)

type VerifyOTPUseCase interface {
	Execute(ctx context.Context, req *verifyOTP.Request) (*verifyOTP.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
