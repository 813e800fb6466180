package cache

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// DoctorLister источник списка врачей (клиент внешнего API)
type DoctorLister interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
}

// MetricsRecorder приемник метрик попаданий в кеш
type MetricsRecorder interface {
	ObserveCacheLookup(cache string, hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
