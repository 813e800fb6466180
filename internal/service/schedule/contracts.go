package schedule

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория настроек окна записи
type ScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID string) (*domain.DoctorSchedule, error)
	Upsert(ctx context.Context, schedule *domain.DoctorSchedule) (*domain.DoctorSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
