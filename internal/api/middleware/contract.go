package middleware

import "time"

// MetricsRecorder приемник HTTP-метрик
type MetricsRecorder interface {
	ObserveHTTPRequest(route, method, status string, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
