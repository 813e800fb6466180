package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

// ClinicClient интерфейс клиента внешнего API клиники
type ClinicClient interface {
	BookAppointment(ctx context.Context, token string, req clinicapi.BookRequest) (*clinicapi.Result, error)
}

// AttemptRecorder журнал попыток бронирования
type AttemptRecorder interface {
	Record(ctx context.Context, attempt *domain.BookingAttempt) error
}

// CacheInvalidator сброс кеша врачей после успешной записи
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе клиники
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
