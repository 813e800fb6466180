package verify_otp

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента внешнего API клиники
type ClinicClient interface {
	PhoneLogin(ctx context.Context, phone, otp string) (*clinicapi.LoginResult, error)
}

// CooldownClearer снимает паузу повторной отправки после входа
type CooldownClearer interface {
	Clear(ctx context.Context, phone string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
