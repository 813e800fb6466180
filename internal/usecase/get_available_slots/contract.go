package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// DoctorProvider источник карточек врачей (внешний API с кешем)
type DoctorProvider interface {
	GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error)
}

// ScheduleProvider источник настроек окна записи врача
// Всегда возвращает настройки: при отсутствии записи - значения по умолчанию
type ScheduleProvider interface {
	GetSchedule(ctx context.Context, doctorID string) (*domain.DoctorSchedule, error)
}

// MetricsRecorder приемник метрик генерации окна
type MetricsRecorder interface {
	ObserveSlotWindow(doctorID string, buckets int, truncated bool, d time.Duration)
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
