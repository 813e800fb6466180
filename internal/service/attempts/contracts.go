package attempts

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// AttemptRepository интерфейс журнала попыток бронирования
type AttemptRepository interface {
	Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error)
	ListByDoctor(ctx context.Context, doctorID string, limit int) ([]*domain.BookingAttempt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
