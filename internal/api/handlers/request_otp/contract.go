package request_otp

import (
	"context"

	requestOTP "github.com/m04kA/SMC-DoctorBooking/internal/usecase/request_otp"
)

type RequestOTPUseCase interface {
	Execute(ctx context.Context, req *requestOTP.Request) (*requestOTP.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
