package request_otp

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента внешнего API клиники
type ClinicClient interface {
	GenerateOTP(ctx context.Context, phone string) (*clinicapi.Result, error)
}

// CooldownStore хранилище пауз между отправками кода
type CooldownStore interface {
	Remaining(ctx context.Context, phone string) (time.Duration, error)
	Start(ctx context.Context, phone string, d time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
